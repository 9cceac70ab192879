// Package genre resolves a song's raw, comma-joined store genres into one of
// the corpus parent genres using a weighting table.
package genre

import (
	"fmt"
	"strings"
)

// Parent is a corpus genre and the weight each store subgenre contributes
type Parent struct {
	Name    string
	Weights map[string]float64
}

// Table lists the parent genres in resolution order
var Table = []Parent{
	{Name: "Rock", Weights: map[string]float64{
		"Alternative": 0.6, "Heavy Metal": 0.8, "Singer/Songwriter": 0.6,
		"Pop/Rock": 0.9, "American Trad Rock": 0.8, "Rock": 1.0, "New Wave": 1.0,
	}},
	{Name: "Hip-Hop", Weights: map[string]float64{
		"Hip-Hop": 1.0, "Hip Hop/Rap": 1.0, "Hardcore Rap": 1.0, "Rap": 1.0,
	}},
	{Name: "R&B/Soul", Weights: map[string]float64{
		"R&B/Soul": 0.9, "Soul": 0.9, "Disco": 0.9,
	}},
	{Name: "Latin", Weights: map[string]float64{
		"Latin": 1.0, "Pop in Spanish": 1.0, "Reggae": 1.0, "Latin Urban": 1.0, "Salsa y Tropical": 1.0,
	}},
	{Name: "Dance", Weights: map[string]float64{
		"Dance": 1.0, "Electronic": 1.0,
	}},
	{Name: "Country", Weights: map[string]float64{
		"Country": 3.0,
	}},
	{Name: "Jazz", Weights: map[string]float64{
		"Jazz": 10.0,
	}},
	{Name: "Pop", Weights: map[string]float64{
		"Soundtrack": 0.7, "Pop": 0.5, "Vocal": 0.6, "Easy Listening": 0.5, "Holiday": 1.0,
	}},
	{Name: "Christian/Gospel", Weights: map[string]float64{
		"Christian/Gospel": 10.0,
	}},
}

// Strategy picks a parent genre from the accumulated weights
type Strategy string

const (
	// StrategyFirst takes the first parent in table order with any weight
	StrategyFirst Strategy = "first"
	// StrategyLast takes the last parent in table order with any weight
	StrategyLast Strategy = "last"
	// StrategyHighest takes the heaviest parent; earlier parents win ties
	StrategyHighest Strategy = "highest"
)

// ParseStrategy converts a command-line value into a Strategy
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyFirst, StrategyLast, StrategyHighest:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q (supported: first, last, highest)", s)
	}
}

// Weigh sums the weight each parent genre receives from a raw genre list,
// in table order
func Weigh(raw string) []float64 {
	weights := make([]float64, len(Table))
	for _, g := range strings.Split(raw, ",") {
		g = strings.TrimSpace(g)
		for i, parent := range Table {
			weights[i] += parent.Weights[g]
		}
	}
	return weights
}

// Resolve returns the parent genre for a raw genre list, or "" when no
// subgenre is in the table
func Resolve(raw string, strategy Strategy) string {
	weights := Weigh(raw)

	best := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		switch strategy {
		case StrategyLast:
			best = i
		case StrategyHighest:
			if best < 0 || w > weights[best] {
				best = i
			}
		default:
			if best < 0 {
				best = i
			}
		}
	}

	if best < 0 {
		return ""
	}
	return Table[best].Name
}
