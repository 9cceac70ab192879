// Package config loads lyricstats settings from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
	"github.com/lehigh-university-libraries/lyricstats/internal/genre"
)

// Config holds all configuration values
type Config struct {
	Database    string `yaml:"database"`
	Dictionary  string `yaml:"dictionary"`
	OutputDir   string `yaml:"output_dir"`
	Concurrency int    `yaml:"concurrency"`

	// Logging
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`

	// Buckets
	Genres   []string       `yaml:"genres"`
	YearFrom int            `yaml:"year_from"`
	YearTo   int            `yaml:"year_to"`
	Decades  []corpus.Range `yaml:"decades"`

	GenreStrategy string `yaml:"genre_strategy"`
}

// Default returns the built-in configuration
func Default() Config {
	buckets := corpus.DefaultBuckets()
	return Config{
		Database:      "song_records.db",
		OutputDir:     "output",
		LogLevel:      "INFO",
		Genres:        buckets.Genres,
		YearFrom:      buckets.YearFrom,
		YearTo:        buckets.YearTo,
		Decades:       buckets.Decades,
		GenreStrategy: string(genre.StrategyFirst),
	}
}

// Load reads path over the defaults, when path is set, then applies
// LYRICSTATS_* environment overrides
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Database = getEnv("LYRICSTATS_DB", cfg.Database)
	cfg.Dictionary = getEnv("LYRICSTATS_DICTIONARY", cfg.Dictionary)
	cfg.OutputDir = getEnv("LYRICSTATS_OUTPUT_DIR", cfg.OutputDir)
	cfg.LogFile = getEnv("LYRICSTATS_LOG_FILE", cfg.LogFile)
	cfg.LogLevel = getEnv("LYRICSTATS_LOG_LEVEL", cfg.LogLevel)

	if v := os.Getenv("LYRICSTATS_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid LYRICSTATS_CONCURRENCY %q: %w", v, err)
		}
		cfg.Concurrency = n
	}

	return cfg, nil
}

// Validate checks the bucket declarations and numeric settings
func (c Config) Validate() error {
	var errs []error
	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency))
	}
	if len(c.Genres) == 0 {
		errs = append(errs, errors.New("at least one genre is required"))
	}
	if c.YearFrom > c.YearTo {
		errs = append(errs, fmt.Errorf("year_from %d is after year_to %d", c.YearFrom, c.YearTo))
	}
	if err := corpus.ValidateRanges(c.Decades); err != nil {
		errs = append(errs, err)
	}
	if _, err := genre.ParseStrategy(c.GenreStrategy); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Buckets returns the partition declarations
func (c Config) Buckets() corpus.Buckets {
	return corpus.Buckets{
		Genres:   c.Genres,
		YearFrom: c.YearFrom,
		YearTo:   c.YearTo,
		Decades:  c.Decades,
	}
}

// Level returns the configured log level
func (c Config) Level() slog.Level {
	return parseLogLevel(c.LogLevel)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
