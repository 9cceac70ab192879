package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/lyricstats/internal/models"
)

func TestComplete(t *testing.T) {
	good := models.Row{Song: "a", Artist: "x", Lyrics: "night", Genre: "Rock", Year: 1984}

	tests := []struct {
		name   string
		mutate func(*models.Row)
		want   bool
	}{
		{name: "all fields", mutate: func(*models.Row) {}, want: true},
		{name: "no song", mutate: func(r *models.Row) { r.Song = "" }},
		{name: "no artist", mutate: func(r *models.Row) { r.Artist = "" }},
		{name: "blank lyrics", mutate: func(r *models.Row) { r.Lyrics = "  \n" }},
		{name: "no genre", mutate: func(r *models.Row) { r.Genre = "" }},
		{name: "no year", mutate: func(r *models.Row) { r.Year = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := good
			tt.mutate(&row)
			assert.Equal(t, tt.want, Complete(row))
		})
	}
}

func TestDropIncompleteNullFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.jsonl")
	data := `{"song":"a","artist":"x","lyrics":"guitar night","genre":"Rock","year":1984}
{"song":"b","artist":"x","lyrics":null,"genre":"Rock","year":1995}
{"song":"c","artist":"y","lyrics":"love baby","genre":null,"year":1986}
{"song":"d","artist":"y","lyrics":"love baby","genre":"Pop","year":null}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	rows, err := NewLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	kept, skipped := DropIncomplete(rows)
	assert.Equal(t, 3, skipped)
	require.Len(t, kept, 1)
	assert.Equal(t, "a", kept[0].Song)
}
