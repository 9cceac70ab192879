// Package statscmd implements the lyricstats subcommands.
package statscmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/lyricstats/internal/config"
	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
	"github.com/lehigh-university-libraries/lyricstats/internal/models"
	"github.com/lehigh-university-libraries/lyricstats/internal/storage"
	"github.com/lehigh-university-libraries/lyricstats/internal/syllable"
)

// Globals are the root command's persistent flags
type Globals struct {
	ConfigPath string
	Database   string
	Dictionary string
	LogFile    string
	Verbose    bool
}

// env is what a subcommand runs with
type env struct {
	cfg    config.Config
	logger *slog.Logger

	db      *storage.Store
	cleanup func() error
}

func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		return nil, err
	}
	if g.Database != "" {
		cfg.Database = g.Database
	}
	if g.Dictionary != "" {
		cfg.Dictionary = g.Dictionary
	}
	if g.LogFile != "" {
		cfg.LogFile = g.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.Level()
	if g.Verbose {
		level = slog.LevelDebug
	}
	logger, cleanup := config.SetupLogger(cfg.LogFile, level)
	slog.SetDefault(logger)

	return &env{cfg: cfg, logger: logger, cleanup: cleanup}, nil
}

// store opens the database on first use
func (e *env) store() (*storage.Store, error) {
	if e.db != nil {
		return e.db, nil
	}
	db, err := storage.Open(e.cfg.Database)
	if err != nil {
		return nil, err
	}
	e.db = db
	return db, nil
}

// estimator loads the pronunciation dictionary when one is configured.
// Without it every word goes to the heuristic.
func (e *env) estimator() (*syllable.Estimator, error) {
	if e.cfg.Dictionary == "" {
		e.logger.Warn("No pronunciation dictionary configured, using the heuristic for every word")
		return syllable.NewEstimator(nil, e.logger), nil
	}
	dict, err := syllable.LoadDictionaryFile(e.cfg.Dictionary)
	if err != nil {
		return nil, err
	}
	e.logger.Info("Pronunciation dictionary loaded", "path", e.cfg.Dictionary, "words", dict.Len())
	return syllable.NewEstimator(dict, e.logger), nil
}

// rows reads the corpus from a row file when input is set, otherwise from
// the database. Incomplete rows are dropped either way.
func (e *env) rows(ctx context.Context, input string) ([]models.Row, error) {
	var rows []models.Row
	if input != "" {
		loaded, err := corpus.NewLoader(input).Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load rows: %w", err)
		}
		rows = loaded
	} else {
		db, err := e.store()
		if err != nil {
			return nil, err
		}
		stored, _, err := db.Rows(ctx)
		if err != nil {
			return nil, err
		}
		rows = stored
	}

	rows, skipped := corpus.DropIncomplete(rows)
	if skipped > 0 {
		e.logger.Warn("Skipped incomplete rows", "skipped", skipped, "kept", len(rows))
	}
	return rows, nil
}

func (e *env) Close() error {
	var err error
	if e.db != nil {
		err = e.db.Close()
	}
	if e.cleanup != nil {
		if cerr := e.cleanup(); err == nil {
			err = cerr
		}
	}
	return err
}
