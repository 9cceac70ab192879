package frequency

import (
	"testing"

	"github.com/lehigh-university-libraries/lyricstats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	rows := []models.Row{
		{Lyrics: "love me love me baby"},
		{Lyrics: "baby\tlove\n  tonight"},
		{Lyrics: ""},
	}

	profile := Count(rows)

	assert.Equal(t, Profile{"love": 3, "me": 2, "baby": 2, "tonight": 1}, profile)
}

func TestCountAll(t *testing.T) {
	groups := map[string][]models.Row{
		"Rock": {{Lyrics: "guitar guitar"}},
		"Jazz": {{Lyrics: "horns"}},
		"Pop":  {},
	}

	set := CountAll(groups)

	require.Len(t, set, 3)
	assert.Equal(t, 2, set["Rock"]["guitar"])
	assert.Equal(t, 1, set["Jazz"]["horns"])
	assert.Empty(t, set["Pop"])
	assert.Contains(t, set, "Pop")
}

func TestComplement(t *testing.T) {
	set := Set{
		"Rock":    {"love": 3, "guitar": 5},
		"Jazz":    {"love": 1, "horns": 2},
		"Country": {"truck": 4, "love": 2},
	}

	tests := []struct {
		name     string
		exclude  string
		expected Profile
	}{
		{
			name:     "excludes one group",
			exclude:  "Rock",
			expected: Profile{"love": 3, "horns": 2, "truck": 4},
		},
		{
			name:     "unknown group yields full aggregate",
			exclude:  "Polka",
			expected: Profile{"love": 6, "guitar": 5, "horns": 2, "truck": 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Complement(tt.exclude, set))
		})
	}
}

func TestComplementReconcilesWithTotal(t *testing.T) {
	set := Set{
		"1980-1989": {"dance": 7, "night": 2, "neon": 1},
		"1990-1999": {"dance": 1, "grunge": 9},
		"2000-2010": {"night": 5, "club": 3, "dance": 2},
	}

	total := Total(set)
	for name := range set {
		complement := Complement(name, set)
		for word, n := range total {
			want := n - set[name][word]
			assert.Equal(t, want, complement[word], "group %s word %s", name, word)
		}
	}
}

func TestComplementDoesNotMutateInput(t *testing.T) {
	set := Set{"a": {"word": 1}, "b": {"word": 2}}

	_ = Complement("a", set)

	assert.Equal(t, Set{"a": {"word": 1}, "b": {"word": 2}}, set)
}

func TestNormalize(t *testing.T) {
	set := Set{
		"Rock": {"the": 10, "love": 3, "supercalifragilistic": 1, "guitar": 2},
		"Jazz": {"a": 4, "love": 1, "saxophone": 2},
	}

	normalized := Normalize(set)

	assert.Equal(t, Profile{"love": 3, "guitar": 2}, normalized["Rock"])
	assert.Equal(t, Profile{"love": 1, "saxophone": 2}, normalized["Jazz"])

	// input untouched
	assert.Equal(t, 10, set["Rock"]["the"])
}

func TestNormalizeBoundaries(t *testing.T) {
	set := Set{"g": {
		"abc":               1, // 3 runes
		"abcd":              1, // 4 runes
		"abcdefghijklmnop":  1, // 16 runes
		"abcdefghijklmnopq": 1, // 17 runes
		"café":              1, // 4 runes, 5 bytes
	}}

	normalized := Normalize(set)

	assert.Equal(t, Profile{"abcd": 1, "abcdefghijklmnop": 1, "café": 1}, normalized["g"])
}

func TestNormalizeIdempotent(t *testing.T) {
	set := Set{
		"Pop":   {"baby": 5, "oh": 9, "tonight": 2},
		"Latin": {"corazon": 3, "yo": 4, "baby": 1},
	}

	once := Normalize(set)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(Set{}))
	assert.Empty(t, Normalize(nil))
}
