package statscmd

import (
	"context"
	"fmt"

	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
)

func executeImport(ctx context.Context, e *env, path string, sampleSize int, clean bool) error {
	e.logger.Info("Importing rows", "path", path, "sample", sampleSize)

	rows, err := corpus.NewLoader(path).LoadSample(sampleSize)
	if err != nil {
		return fmt.Errorf("failed to load rows: %w", err)
	}

	if clean {
		for i := range rows {
			rows[i].Lyrics = corpus.CleanLyrics(rows[i].Lyrics)
		}
	}

	rows, skipped := corpus.DropIncomplete(rows)
	if skipped > 0 {
		e.logger.Warn("Skipped incomplete rows", "skipped", skipped, "kept", len(rows))
	}

	db, err := e.store()
	if err != nil {
		return err
	}
	if err := db.InsertRows(ctx, rows); err != nil {
		return err
	}

	e.logger.Info("Import complete", "rows", len(rows), "skipped", skipped, "database", e.cfg.Database)
	return nil
}

func executeExport(ctx context.Context, e *env, path string) error {
	db, err := e.store()
	if err != nil {
		return err
	}
	rows, skipped, err := db.Rows(ctx)
	if err != nil {
		return err
	}

	if err := corpus.WriteParquet(path, rows); err != nil {
		return err
	}

	e.logger.Info("Export complete", "rows", len(rows), "skipped", skipped, "path", path)
	return nil
}
