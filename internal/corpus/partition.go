// Package corpus groups song rows into named partitions and loads rows from
// dataset files.
package corpus

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/lehigh-university-libraries/lyricstats/internal/models"
)

var (
	// ErrUnknownCategory is returned when a row's genre is not one of the declared buckets
	ErrUnknownCategory = errors.New("category not in declared bucket set")
	// ErrInvalidRange is returned for inverted or overlapping ranges
	ErrInvalidRange = errors.New("invalid range")
	// ErrUnknownMode is returned by Split for an unsupported mode
	ErrUnknownMode = errors.New("unknown partition mode")
)

// Mode selects the attribute rows are partitioned on
type Mode string

const (
	ModeGenre  Mode = "genre"
	ModeYear   Mode = "year"
	ModeDecade Mode = "decade"
)

// ParseMode converts a command-line value into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeGenre, ModeYear, ModeDecade:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q (supported: genre, year, decade)", ErrUnknownMode, s)
	}
}

// DefaultGenres is the fixed genre enumeration of the corpus
var DefaultGenres = []string{
	"Rock", "Jazz", "Country", "Pop", "Dance",
	"Hip-Hop", "R&B/Soul", "Latin", "Christian/Gospel",
}

// Range is a closed interval of years mapped to a bucket name
type Range struct {
	Name string `yaml:"name"`
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
}

// Contains reports whether year falls inside the closed interval
func (r Range) Contains(year int) bool {
	return year >= r.From && year <= r.To
}

// DefaultDecades are the coarse time buckets. The last one deliberately
// includes 2010.
var DefaultDecades = []Range{
	{Name: "1980-1989", From: 1980, To: 1989},
	{Name: "1990-1999", From: 1990, To: 1999},
	{Name: "2000-2010", From: 2000, To: 2010},
}

// Default year span of the corpus
const (
	DefaultYearFrom = 1980
	DefaultYearTo   = 2010
)

// YearRanges returns one single-year bucket per year in [from, to]
func YearRanges(from, to int) []Range {
	if to < from {
		return nil
	}
	ranges := make([]Range, 0, to-from+1)
	for year := from; year <= to; year++ {
		ranges = append(ranges, Range{Name: strconv.Itoa(year), From: year, To: year})
	}
	return ranges
}

// ValidateRanges rejects inverted intervals, duplicate names and overlaps so
// that every year maps to at most one bucket.
func ValidateRanges(ranges []Range) error {
	names := make(map[string]bool, len(ranges))
	for _, r := range ranges {
		if r.From > r.To {
			return fmt.Errorf("%w: %s has from %d > to %d", ErrInvalidRange, r.Name, r.From, r.To)
		}
		if names[r.Name] {
			return fmt.Errorf("%w: duplicate bucket name %s", ErrInvalidRange, r.Name)
		}
		names[r.Name] = true
	}

	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].From <= sorted[i-1].To {
			return fmt.Errorf("%w: %s overlaps %s", ErrInvalidRange, sorted[i].Name, sorted[i-1].Name)
		}
	}
	return nil
}

// Partition is the result of grouping rows. Names keeps the declared bucket
// order; every declared bucket is present in Groups even when empty.
type Partition struct {
	Mode    Mode
	Names   []string
	Groups  map[string][]models.Row
	Dropped int // rows outside every configured range
}

func newPartition(mode Mode, names []string) *Partition {
	p := &Partition{
		Mode:   mode,
		Names:  names,
		Groups: make(map[string][]models.Row, len(names)),
	}
	for _, name := range names {
		p.Groups[name] = []models.Row{}
	}
	return p
}

// Size returns the number of rows placed in a bucket
func (p *Partition) Size() int {
	total := 0
	for _, rows := range p.Groups {
		total += len(rows)
	}
	return total
}

// ByCategory partitions rows on an exact match of their genre. A row whose
// genre is not declared makes the whole partition fail.
func ByCategory(rows []models.Row, categories []string) (*Partition, error) {
	names := make([]string, len(categories))
	copy(names, categories)
	p := newPartition(ModeGenre, names)

	for _, row := range rows {
		if _, ok := p.Groups[row.Genre]; !ok {
			return nil, fmt.Errorf("%w: %q (song %q by %q)", ErrUnknownCategory, row.Genre, row.Song, row.Artist)
		}
		p.Groups[row.Genre] = append(p.Groups[row.Genre], row)
	}

	return p, nil
}

// ByRange partitions rows into closed year intervals. Rows outside every
// interval are dropped and counted in Dropped.
func ByRange(mode Mode, rows []models.Row, ranges []Range) (*Partition, error) {
	if err := ValidateRanges(ranges); err != nil {
		return nil, err
	}

	names := make([]string, len(ranges))
	for i, r := range ranges {
		names[i] = r.Name
	}
	p := newPartition(mode, names)

	for _, row := range rows {
		placed := false
		for _, r := range ranges {
			if r.Contains(row.Year) {
				p.Groups[r.Name] = append(p.Groups[r.Name], row)
				placed = true
				break
			}
		}
		if !placed {
			p.Dropped++
		}
	}

	return p, nil
}

// Buckets holds the bucket declarations used by Split
type Buckets struct {
	Genres   []string
	YearFrom int
	YearTo   int
	Decades  []Range
}

// DefaultBuckets returns the corpus defaults
func DefaultBuckets() Buckets {
	return Buckets{
		Genres:   DefaultGenres,
		YearFrom: DefaultYearFrom,
		YearTo:   DefaultYearTo,
		Decades:  DefaultDecades,
	}
}

// Split partitions rows according to mode
func Split(rows []models.Row, mode Mode, buckets Buckets) (*Partition, error) {
	switch mode {
	case ModeGenre:
		return ByCategory(rows, buckets.Genres)
	case ModeYear:
		return ByRange(ModeYear, rows, YearRanges(buckets.YearFrom, buckets.YearTo))
	case ModeDecade:
		return ByRange(ModeDecade, rows, buckets.Decades)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
