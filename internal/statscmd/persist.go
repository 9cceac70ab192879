package statscmd

import (
	"context"
	"fmt"

	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
	"github.com/lehigh-university-libraries/lyricstats/internal/report"
	"github.com/lehigh-university-libraries/lyricstats/internal/storage"
)

// statsTarget pairs a stats table with the partition it is computed from
type statsTarget struct {
	table storage.Table
	mode  corpus.Mode
}

var statsTargets = map[string]statsTarget{
	"genre": {table: storage.GenreStats, mode: corpus.ModeGenre},
	"year":  {table: storage.YearStats, mode: corpus.ModeDecade},
}

func executePersist(ctx context.Context, e *env, tables []string) error {
	db, err := e.store()
	if err != nil {
		return err
	}

	for _, name := range tables {
		target, ok := statsTargets[name]
		if !ok {
			return fmt.Errorf("unknown table: %s (supported: genre, year)", name)
		}

		result, err := analyze(ctx, e, target.mode, "")
		if err != nil {
			return err
		}

		stats := report.StatsFromResult(result)
		if err := db.WriteStats(ctx, target.table, stats); err != nil {
			return err
		}
		e.logger.Info("Stats written", "table", string(target.table), "groups", len(stats), "run_id", result.RunID.String())
	}

	return nil
}
