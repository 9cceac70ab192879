// Package analysis runs the full pipeline over a corpus: partition, count,
// normalize, score, and average syllables per group.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
	"github.com/lehigh-university-libraries/lyricstats/internal/distinct"
	"github.com/lehigh-university-libraries/lyricstats/internal/frequency"
	"github.com/lehigh-university-libraries/lyricstats/internal/models"
	"github.com/lehigh-university-libraries/lyricstats/internal/syllable"
)

// Options configures a run
type Options struct {
	Mode        corpus.Mode
	Buckets     corpus.Buckets
	Concurrency int
	Logger      *slog.Logger
}

// GroupResult holds everything computed for one group
type GroupResult struct {
	Name            string
	Rows            int
	Entries         []distinct.Entry // ascending by score
	SyllableAverage float64
	Empty           bool
}

// Result is the outcome of a run, groups in partition order
type Result struct {
	RunID   uuid.UUID
	Mode    corpus.Mode
	Groups  []GroupResult
	Dropped int
}

// Run executes the pipeline. Empty groups are flagged and get no syllable
// average; a song with no lyric tokens fails the run.
func Run(ctx context.Context, rows []models.Row, est *syllable.Estimator, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.New()
	logger = logger.With("run_id", runID.String(), "mode", string(opts.Mode))

	partition, err := corpus.Split(rows, opts.Mode, opts.Buckets)
	if err != nil {
		return nil, fmt.Errorf("failed to partition corpus: %w", err)
	}
	if partition.Dropped > 0 {
		logger.Warn("Rows outside every bucket were dropped", "dropped", partition.Dropped)
	}
	logger.Info("Corpus partitioned", "groups", len(partition.Names), "rows", partition.Size())

	set := frequency.Normalize(frequency.CountAll(partition.Groups))
	batch := distinct.BatchScore(set)

	result := &Result{
		RunID:   runID,
		Mode:    opts.Mode,
		Groups:  make([]GroupResult, len(partition.Names)),
		Dropped: partition.Dropped,
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range partition.Names {
		groupRows := partition.Groups[name]
		result.Groups[i] = GroupResult{
			Name:    name,
			Rows:    len(groupRows),
			Entries: batch[name],
			Empty:   len(groupRows) == 0,
		}
		if len(groupRows) == 0 {
			logger.Warn("Group is empty", "group", name)
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			avg, err := est.AveragePerGroup(groupRows)
			if err != nil {
				return fmt.Errorf("group %s: %w", name, err)
			}
			result.Groups[i].SyllableAverage = avg
			logger.Debug("Group averaged", "group", name, "rows", len(groupRows), "syllable_average", avg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("Analysis complete", "groups", len(result.Groups))
	return result, nil
}
