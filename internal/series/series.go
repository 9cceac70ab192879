// Package series builds per-genre time series of syllable averages and
// exports them for plotting.
package series

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
	"github.com/lehigh-university-libraries/lyricstats/internal/syllable"
)

// ErrUnknownGenre is returned for a genre outside the declared set
var ErrUnknownGenre = errors.New("unknown genre")

// Point is one song's syllable average in the year it was released
type Point struct {
	Year    int     `json:"year"`
	Average float64 `json:"average"`
}

// Set maps a genre to its points, sorted by year then average
type Set map[string][]Point

// Build computes a point per song from a year partition. Every declared
// genre is present in the result, even without points.
func Build(p *corpus.Partition, est *syllable.Estimator, genres []string) (Set, error) {
	set := make(Set, len(genres))
	for _, g := range genres {
		set[g] = []Point{}
	}

	for _, name := range p.Names {
		year, err := strconv.Atoi(name)
		if err != nil {
			return nil, fmt.Errorf("bucket %q is not a single year: %w", name, err)
		}
		for _, row := range p.Groups[name] {
			if _, ok := set[row.Genre]; !ok {
				return nil, fmt.Errorf("%w: %q (song %q by %q)", ErrUnknownGenre, row.Genre, row.Song, row.Artist)
			}
			avg, err := est.AveragePerRow(row.Lyrics)
			if err != nil {
				return nil, fmt.Errorf("song %q by %q: %w", row.Song, row.Artist, err)
			}
			set[row.Genre] = append(set[row.Genre], Point{Year: year, Average: avg})
		}
	}

	for _, points := range set {
		sort.Slice(points, func(i, j int) bool {
			if points[i].Year != points[j].Year {
				return points[i].Year < points[j].Year
			}
			return points[i].Average < points[j].Average
		})
	}
	return set, nil
}

// Figure is one plot: a file name stem, a title and the genres it shows
type Figure struct {
	Name   string   `json:"name"`
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
}

// Selections accepted by Plan besides an explicit genre list
const (
	SelectAll      = "all"
	SelectTogether = "together"
	SelectIndiv    = "indiv"
)

// Plan turns a selection into figures. "together" puts every genre on one
// figure, "indiv" gives each genre its own, "all" does both, and anything
// else is read as a comma-separated list of genres to show together.
func Plan(selection string, genres []string, from, to int) ([]Figure, error) {
	span := fmt.Sprintf("%d-%d", from, to)

	together := Figure{
		Name:   "everyone",
		Title:  "Average Syllable Counts Per Word Per Song For Each Genre\nFrom " + span,
		Genres: genres,
	}
	indiv := func() []Figure {
		figs := make([]Figure, 0, len(genres))
		for _, g := range genres {
			figs = append(figs, Figure{
				Name:   strings.ReplaceAll(g, "/", "_"),
				Title:  fmt.Sprintf("%s's Syllabic Average from %s", g, span),
				Genres: []string{g},
			})
		}
		return figs
	}

	switch selection {
	case SelectAll:
		return append([]Figure{together}, indiv()...), nil
	case SelectTogether:
		return []Figure{together}, nil
	case SelectIndiv:
		return indiv(), nil
	}

	known := make(map[string]bool, len(genres))
	for _, g := range genres {
		known[g] = true
	}

	var chosen []string
	for _, g := range strings.Split(selection, ",") {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if !known[g] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGenre, g)
		}
		chosen = append(chosen, g)
	}
	if len(chosen) == 0 {
		return nil, fmt.Errorf("%w: empty selection", ErrUnknownGenre)
	}

	return []Figure{{
		Name:   "group_photo",
		Title:  listTitle(chosen) + "\nSyllabic Average from " + span,
		Genres: chosen,
	}}, nil
}

func listTitle(genres []string) string {
	if len(genres) == 1 {
		return genres[0] + "'s"
	}
	return strings.Join(genres[:len(genres)-1], ", ") + ", and " + genres[len(genres)-1] + "'s"
}
