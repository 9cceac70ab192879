package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		strategy Strategy
		expected string
	}{
		{name: "single subgenre", raw: "Heavy Metal", strategy: StrategyFirst, expected: "Rock"},
		{name: "first in table order", raw: "Pop,Rock", strategy: StrategyFirst, expected: "Rock"},
		{name: "last in table order", raw: "Rock,Pop", strategy: StrategyLast, expected: "Pop"},
		{name: "highest weight", raw: "Pop,Jazz,Rock", strategy: StrategyHighest, expected: "Jazz"},
		{name: "highest tie goes to earlier", raw: "Rap,Dance", strategy: StrategyHighest, expected: "Hip-Hop"},
		{name: "weights accumulate", raw: "Pop,Vocal,Soundtrack,Alternative", strategy: StrategyHighest, expected: "Pop"},
		{name: "spaces around entries", raw: "Latin Urban, Reggae", strategy: StrategyFirst, expected: "Latin"},
		{name: "holiday goes to pop", raw: "Holiday", strategy: StrategyFirst, expected: "Pop"},
		{name: "nothing matches", raw: "Comedy,Spoken Word", strategy: StrategyFirst, expected: ""},
		{name: "empty", raw: "", strategy: StrategyHighest, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.raw, tt.strategy))
		})
	}
}

func TestWeigh(t *testing.T) {
	weights := Weigh("Rock,Pop/Rock,Disco")
	require.Len(t, weights, len(Table))
	assert.InDelta(t, 1.9, weights[0], 1e-9)
	assert.InDelta(t, 0.9, weights[2], 1e-9)
	assert.Zero(t, weights[6])
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("highest")
	require.NoError(t, err)
	assert.Equal(t, StrategyHighest, s)

	_, err = ParseStrategy("random")
	assert.Error(t, err)
}
