package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/lyricstats/internal/analysis"
	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
	"github.com/lehigh-university-libraries/lyricstats/internal/distinct"
)

// ascending builds n entries scored evenly from -1 to 1
func ascending(n int) []distinct.Entry {
	entries := make([]distinct.Entry, n)
	for i := range n {
		entries[i] = distinct.Entry{
			Word:  fmt.Sprintf("w%03d", i),
			Score: float64(2*i-(n-1)) / float64(n-1),
		}
	}
	return entries
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{0, "0.0"},
		{-1, "-1.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{2.0 / 3.0, "0.6666666666666666"},
		{1e-05, "1e-05"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatScore(tt.in))
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Rock_distinctiveness.txt", FileName("Rock"))
	assert.Equal(t, "R&B_Soul_distinctiveness.txt", FileName("R&B/Soul"))
	assert.Equal(t, "1980-1989_distinctiveness.txt", FileName("1980-1989"))
}

func TestFormatLines(t *testing.T) {
	lines, err := FormatLines(ascending(101))
	require.NoError(t, err)
	require.Len(t, lines, TopN)

	expected := "w000" + strings.Repeat(" ", 27) + "-1.0 w100 \t1.0\t"
	assert.Equal(t, expected, lines[0])

	// last line pairs the 100th lowest with the 100th highest
	assert.True(t, strings.HasPrefix(lines[99], "w099"))
	assert.Contains(t, lines[99], " w001 \t")

	_, err = FormatLines(ascending(99))
	assert.Error(t, err)
}

func TestWriteDistinctFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	batch := map[string][]distinct.Entry{
		"R&B/Soul": ascending(101),
		"Jazz":     ascending(50),
		"Latin":    nil,
	}

	skipped, err := WriteDistinctFiles(dir, []string{"R&B/Soul", "Jazz", "Latin"}, batch)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jazz", "Latin"}, skipped)

	data, err := os.ReadFile(filepath.Join(dir, "R&B_Soul_distinctiveness.txt"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), TopN)

	_, err = os.Stat(filepath.Join(dir, "Jazz_distinctiveness.txt"))
	assert.True(t, os.IsNotExist(err), "a 50 entry group must not produce a file")
}

func TestBuildStats(t *testing.T) {
	t.Run("uses the first hundred", func(t *testing.T) {
		entries := make([]distinct.Entry, 0, 150)
		for i := range 100 {
			entries = append(entries, distinct.Entry{Score: -0.5, Word: fmt.Sprintf("a%03d", i)})
		}
		for i := range 50 {
			entries = append(entries, distinct.Entry{Score: 1, Word: fmt.Sprintf("b%03d", i)})
		}

		stats := BuildStats("Rock", entries, 1.3)
		assert.Equal(t, "Rock", stats.Label)
		assert.InDelta(t, -0.5, stats.Score, 1e-9)
		assert.InDelta(t, 1.3, stats.SyllableAverage, 1e-9)
		require.Len(t, stats.TopWords, 100)
		assert.Equal(t, "a000", stats.TopWords[0])
	})

	t.Run("fewer than a hundred", func(t *testing.T) {
		entries := []distinct.Entry{{Score: -1, Word: "love"}, {Score: 0, Word: "baby"}}
		stats := BuildStats("Pop", entries, 0)
		assert.InDelta(t, -0.5, stats.Score, 1e-9)
		assert.Equal(t, []string{"love", "baby"}, stats.TopWords)
	})

	t.Run("no entries", func(t *testing.T) {
		stats := BuildStats("Latin", nil, 0)
		assert.Zero(t, stats.Score)
		assert.Empty(t, stats.TopWords)
	})
}

func testResult() *analysis.Result {
	return &analysis.Result{
		RunID: uuid.New(),
		Mode:  corpus.ModeGenre,
		Groups: []analysis.GroupResult{
			{Name: "Rock", Rows: 12, Entries: ascending(120), SyllableAverage: 1.25},
			{Name: "Jazz", Rows: 3, Entries: ascending(10), SyllableAverage: 1.5},
			{Name: "Latin", Empty: true},
		},
		Dropped: 2,
	}
}

func TestStatsFromResult(t *testing.T) {
	stats := StatsFromResult(testResult())
	require.Len(t, stats, 2)
	assert.Equal(t, "Rock", stats[0].Label)
	assert.Len(t, stats[0].TopWords, 100)
	assert.Equal(t, "Jazz", stats[1].Label)
	assert.Len(t, stats[1].TopWords, 10)
}

func TestSummary(t *testing.T) {
	result := testResult()
	s := NewSummary(result)

	assert.Equal(t, result.RunID.String(), s.RunID)
	assert.Equal(t, "genre", s.Mode)
	assert.Equal(t, 15, s.TotalRows)
	assert.Equal(t, 2, s.Dropped)
	require.Len(t, s.Groups, 3)
	assert.False(t, s.Groups[0].BelowThreshold)
	assert.True(t, s.Groups[1].BelowThreshold)
	assert.True(t, s.Groups[2].Empty)

	var buf bytes.Buffer
	s.PrintSummary(&buf)
	out := buf.String()
	assert.Contains(t, out, "LYRIC STATISTICS SUMMARY")
	assert.Contains(t, out, result.RunID.String())
	assert.Contains(t, out, "Rock")
	assert.Contains(t, out, "(empty)")
}

func TestSummarySaveToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	s := NewSummary(testResult())

	require.NoError(t, s.SaveToJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Summary
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, s.RunID, loaded.RunID)
	assert.Len(t, loaded.Groups, 3)
}

func TestSummarySaveToYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.yaml")
	s := NewSummary(testResult())

	require.NoError(t, s.SaveToYAML(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "runid: "+s.RunID)

	var loaded Summary
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, "Rock", loaded.Groups[0].Name)
}

func TestSaveDetailedReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	result := testResult()

	require.NoError(t, NewSummary(result).SaveDetailedReport(path, result, 5))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "GROUP 1: Rock")
	assert.Contains(t, content, "EMPTY GROUP")
	assert.Contains(t, content, "w119")
}
