// Package syllable estimates syllable counts for lyric words, first from a
// pronunciation dictionary and then from a spelling heuristic.
package syllable

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/lyricstats/internal/models"
)

var (
	// ErrEmptyText is returned when a lyric has no tokens
	ErrEmptyText = errors.New("text has no tokens")
	// ErrEmptyGroup is returned when averaging over zero rows
	ErrEmptyGroup = errors.New("group has no rows")
)

// Tier records which strategy produced an estimate
type Tier int

const (
	TierDictionary Tier = iota
	TierHeuristic
)

func (t Tier) String() string {
	switch t {
	case TierDictionary:
		return "dictionary"
	case TierHeuristic:
		return "heuristic"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Estimate is a syllable count and where it came from
type Estimate struct {
	Count int
	Tier  Tier
}

// Estimator combines a pronunciation dictionary with the heuristic fallback.
// A nil dictionary means every word goes to the heuristic.
type Estimator struct {
	dict   *Dictionary
	logger *slog.Logger
}

// NewEstimator creates an estimator. logger may be nil.
func NewEstimator(dict *Dictionary, logger *slog.Logger) *Estimator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Estimator{dict: dict, logger: logger}
}

// Estimate returns the syllable count of a single word
func (e *Estimator) Estimate(word string) Estimate {
	if counts, ok := e.dict.Lookup(strings.ToLower(word)); ok && len(counts) > 0 {
		return Estimate{Count: counts[0], Tier: TierDictionary}
	}
	e.logger.Debug("dictionary miss", "word", word)
	return Estimate{Count: Heuristic(word), Tier: TierHeuristic}
}

// RowSummary is the syllable tally of one lyric text
type RowSummary struct {
	Tokens         int
	Syllables      int
	DictionaryHits int
	HeuristicHits  int
	Average        float64
}

// EstimateRow tallies every whitespace-delimited token of text
func (e *Estimator) EstimateRow(text string) (RowSummary, error) {
	var s RowSummary
	for _, word := range strings.Fields(text) {
		est := e.Estimate(word)
		s.Tokens++
		s.Syllables += est.Count
		if est.Tier == TierDictionary {
			s.DictionaryHits++
		} else {
			s.HeuristicHits++
		}
	}
	if s.Tokens == 0 {
		return s, ErrEmptyText
	}
	s.Average = float64(s.Syllables) / float64(s.Tokens)
	return s, nil
}

// AveragePerRow returns the mean syllables per token of text
func (e *Estimator) AveragePerRow(text string) (float64, error) {
	s, err := e.EstimateRow(text)
	if err != nil {
		return 0, err
	}
	return s.Average, nil
}

// AveragePerGroup returns the mean of the per-row averages. Every song weighs
// the same regardless of its length.
func (e *Estimator) AveragePerGroup(rows []models.Row) (float64, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyGroup
	}
	var sum float64
	for _, row := range rows {
		avg, err := e.AveragePerRow(row.Lyrics)
		if err != nil {
			return 0, fmt.Errorf("song %q by %q: %w", row.Song, row.Artist, err)
		}
		sum += avg
	}
	return sum / float64(len(rows)), nil
}
