package statscmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lehigh-university-libraries/lyricstats/internal/analysis"
	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
	"github.com/lehigh-university-libraries/lyricstats/internal/distinct"
	"github.com/lehigh-university-libraries/lyricstats/internal/report"
)

type distinctOptions struct {
	mode         corpus.Mode
	input        string
	outputJSON   string
	outputYAML   string
	outputReport string
}

// analyze loads the corpus and runs the pipeline in the given mode
func analyze(ctx context.Context, e *env, mode corpus.Mode, input string) (*analysis.Result, error) {
	rows, err := e.rows(ctx, input)
	if err != nil {
		return nil, err
	}
	est, err := e.estimator()
	if err != nil {
		return nil, err
	}

	return analysis.Run(ctx, rows, est, analysis.Options{
		Mode:        mode,
		Buckets:     e.cfg.Buckets(),
		Concurrency: e.cfg.Concurrency,
		Logger:      e.logger,
	})
}

func executeDistinct(ctx context.Context, e *env, opts distinctOptions) error {
	result, err := analyze(ctx, e, opts.mode, opts.input)
	if err != nil {
		return err
	}

	names := make([]string, len(result.Groups))
	batch := make(map[string][]distinct.Entry, len(result.Groups))
	for i, g := range result.Groups {
		names[i] = g.Name
		batch[g.Name] = g.Entries
	}

	dir := filepath.Join(e.cfg.OutputDir, string(opts.mode))
	skipped, err := report.WriteDistinctFiles(dir, names, batch)
	if err != nil {
		return err
	}
	e.logger.Info("Distinctiveness files written", "dir", dir, "groups", len(names)-len(skipped), "skipped", len(skipped))

	summary := report.NewSummary(result)
	summary.PrintSummary(os.Stdout)

	if opts.outputJSON != "" {
		if err := summary.SaveToJSON(opts.outputJSON); err != nil {
			return err
		}
		fmt.Printf("\nJSON summary saved to: %s\n", opts.outputJSON)
	}
	if opts.outputYAML != "" {
		if err := summary.SaveToYAML(opts.outputYAML); err != nil {
			return err
		}
		fmt.Printf("YAML summary saved to: %s\n", opts.outputYAML)
	}
	if opts.outputReport != "" {
		if err := summary.SaveDetailedReport(opts.outputReport, result, 20); err != nil {
			return err
		}
		fmt.Printf("Detailed report saved to: %s\n", opts.outputReport)
	}

	return nil
}
