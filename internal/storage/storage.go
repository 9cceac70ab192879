// Package storage persists song rows and per-group statistics in SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lehigh-university-libraries/lyricstats/internal/models"
)

// ErrUnknownTable is returned for a stats table other than the two known ones
var ErrUnknownTable = errors.New("unknown stats table")

// Table names a per-group statistics table
type Table string

const (
	GenreStats Table = "genre_stats"
	YearStats  Table = "year_stats"
)

// labelColumn returns the column holding the group label
func (t Table) labelColumn() (string, error) {
	switch t {
	case GenreStats:
		return "genre", nil
	case YearStats:
		return "year", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownTable, string(t))
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS media (
	song_name   TEXT,
	artist_name TEXT,
	lyrics      TEXT,
	genre       TEXT,
	year        INTEGER
);
CREATE TABLE IF NOT EXISTS genre_stats (
	score            TEXT,
	syllabic_average TEXT,
	top100_words     TEXT,
	genre            TEXT
);
CREATE TABLE IF NOT EXISTS year_stats (
	score            TEXT,
	syllabic_average TEXT,
	top100_words     TEXT,
	year             TEXT
);
`

// Store wraps the SQLite database
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating when needed) the database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	slog.Debug("SQLite initialized", "path", path)
	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Rows reads every song row. Rows with a missing field or an unparsable year
// are skipped and counted.
func (s *Store) Rows(ctx context.Context) ([]models.Row, int, error) {
	rs, err := s.db.QueryContext(ctx, "SELECT song_name, artist_name, lyrics, genre, year FROM media ORDER BY rowid")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rs.Close()

	var rows []models.Row
	skipped := 0
	for rs.Next() {
		var song, artist, lyrics, genre, year sql.NullString
		if err := rs.Scan(&song, &artist, &lyrics, &genre, &year); err != nil {
			return nil, 0, fmt.Errorf("failed to scan row: %w", err)
		}
		if !song.Valid || !artist.Valid || !lyrics.Valid || !genre.Valid || !year.Valid {
			skipped++
			continue
		}
		y, err := strconv.Atoi(strings.TrimSpace(year.String))
		if err != nil {
			skipped++
			continue
		}
		rows = append(rows, models.Row{
			Song:   song.String,
			Artist: artist.String,
			Lyrics: lyrics.String,
			Genre:  genre.String,
			Year:   y,
		})
	}
	if err := rs.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading rows: %w", err)
	}

	if skipped > 0 {
		slog.Warn("Skipped incomplete rows", "skipped", skipped)
	}
	return rows, skipped, nil
}

// InsertRows appends rows in a single transaction
func (s *Store) InsertRows(ctx context.Context, rows []models.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO media (song_name, artist_name, lyrics, genre, year) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Song, row.Artist, row.Lyrics, row.Genre, row.Year); err != nil {
			return fmt.Errorf("failed to insert %q by %q: %w", row.Song, row.Artist, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rows: %w", err)
	}
	return nil
}

// RawGenre is a song's uncurated, comma-joined genre list
type RawGenre struct {
	Song   string
	Artist string
	Genres string
}

// RawGenres reads the genre column of every row that has one
func (s *Store) RawGenres(ctx context.Context) ([]RawGenre, error) {
	rs, err := s.db.QueryContext(ctx, "SELECT genre, song_name, artist_name FROM media WHERE genre IS NOT NULL ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rs.Close()

	var out []RawGenre
	for rs.Next() {
		var g RawGenre
		var song, artist sql.NullString
		if err := rs.Scan(&g.Genres, &song, &artist); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		g.Song, g.Artist = song.String, artist.String
		out = append(out, g)
	}
	return out, rs.Err()
}

// UpdateGenre sets the genre of a song
func (s *Store) UpdateGenre(ctx context.Context, song, artist, genre string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"UPDATE media SET genre = ? WHERE song_name = ? AND artist_name = ?", genre, song, artist)
	if err != nil {
		return fmt.Errorf("failed to update genre of %q by %q: %w", song, artist, err)
	}
	return nil
}

// DeleteRow removes a song
func (s *Store) DeleteRow(ctx context.Context, song, artist string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM media WHERE song_name = ? AND artist_name = ?", song, artist)
	if err != nil {
		return fmt.Errorf("failed to delete %q by %q: %w", song, artist, err)
	}
	return nil
}

// WriteStats replaces the stats row of every group. Each group is written in
// its own transaction so a failure never leaves a half-written row.
func (s *Store) WriteStats(ctx context.Context, table Table, stats []models.GroupStats) error {
	col, err := table.labelColumn()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	del := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, col)
	ins := fmt.Sprintf("INSERT INTO %s (score, syllabic_average, top100_words, %s) VALUES (?, ?, ?, ?)", table, col)

	for _, st := range stats {
		if err := s.writeOne(ctx, del, ins, st); err != nil {
			return fmt.Errorf("failed to write %s stats for %s: %w", table, st.Label, err)
		}
	}
	return nil
}

func (s *Store) writeOne(ctx context.Context, del, ins string, st models.GroupStats) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, del, st.Label); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, ins,
		formatFloat(st.Score),
		formatFloat(st.SyllableAverage),
		strings.Join(st.TopWords, ","),
		st.Label,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// Stats reads back a stats table
func (s *Store) Stats(ctx context.Context, table Table) ([]models.GroupStats, error) {
	col, err := table.labelColumn()
	if err != nil {
		return nil, err
	}

	rs, err := s.db.QueryContext(ctx,
		fmt.Sprintf("SELECT score, syllabic_average, top100_words, %s FROM %s ORDER BY rowid", col, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rs.Close()

	var out []models.GroupStats
	for rs.Next() {
		var score, syllables, words string
		var st models.GroupStats
		if err := rs.Scan(&score, &syllables, &words, &st.Label); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		if st.Score, err = strconv.ParseFloat(score, 64); err != nil {
			return nil, fmt.Errorf("bad score for %s: %w", st.Label, err)
		}
		if st.SyllableAverage, err = strconv.ParseFloat(syllables, 64); err != nil {
			return nil, fmt.Errorf("bad syllable average for %s: %w", st.Label, err)
		}
		if words != "" {
			st.TopWords = strings.Split(words, ",")
		}
		out = append(out, st)
	}
	return out, rs.Err()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
