package statscmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
	"github.com/lehigh-university-libraries/lyricstats/internal/series"
)

func executeSeries(ctx context.Context, e *env, input, selection, format string) error {
	figs, err := series.Plan(selection, e.cfg.Genres, e.cfg.YearFrom, e.cfg.YearTo)
	if err != nil {
		return err
	}

	rows, err := e.rows(ctx, input)
	if err != nil {
		return err
	}
	est, err := e.estimator()
	if err != nil {
		return err
	}

	p, err := corpus.ByRange(corpus.ModeYear, rows, corpus.YearRanges(e.cfg.YearFrom, e.cfg.YearTo))
	if err != nil {
		return err
	}
	if p.Dropped > 0 {
		e.logger.Warn("Rows outside the year span were dropped", "dropped", p.Dropped)
	}

	set, err := series.Build(p, est, e.cfg.Genres)
	if err != nil {
		return err
	}

	dir := filepath.Join(e.cfg.OutputDir, "series")
	paths, err := series.Export(dir, format, figs, set)
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Printf("Series saved to: %s\n", path)
	}
	return nil
}
