package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/lyricstats/internal/models"
)

func TestNewLoader(t *testing.T) {
	path := "./test.parquet"
	loader := NewLoader(path)

	if loader.path != path {
		t.Errorf("Expected path %s, got %s", path, loader.path)
	}
}

func TestLoadJSONLSample(t *testing.T) {
	tmpDir := t.TempDir()
	jsonlPath := filepath.Join(tmpDir, "rows.jsonl")

	testData := `{"song":"Call Me","artist":"Blondie","lyrics":"call me on the line","genre":"Rock","year":1980}
{"song":"Physical","artist":"Olivia Newton-John","lyrics":"lets get physical","genre":"Pop","year":1981}

{"song":"Eye of the Tiger","artist":"Survivor","lyrics":"rising up","genre":"Rock","year":1982}
`
	if err := os.WriteFile(jsonlPath, []byte(testData), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	loader := NewLoader(jsonlPath)

	rows, err := loader.LoadSample(2)
	if err != nil {
		t.Fatalf("LoadSample failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	if rows[0].Song != "Call Me" {
		t.Errorf("Expected song 'Call Me', got %s", rows[0].Song)
	}

	if rows[1].Year != 1981 {
		t.Errorf("Expected year 1981, got %d", rows[1].Year)
	}

	all, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(all) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(all))
	}
}

func TestLoadJSONLMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	jsonlPath := filepath.Join(tmpDir, "rows.jsonl")

	if err := os.WriteFile(jsonlPath, []byte("{not json}\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := NewLoader(jsonlPath).Load(); err == nil {
		t.Error("Expected error for malformed JSON, got nil")
	}
}

func TestParquetRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rows.parquet")

	rows := []models.Row{
		{Song: "Call Me", Artist: "Blondie", Lyrics: "call me", Genre: "Rock", Year: 1980},
		{Song: "Vogue", Artist: "Madonna", Lyrics: "strike a pose", Genre: "Dance", Year: 1990},
		{Song: "Hey Ya", Artist: "OutKast", Lyrics: "shake it", Genre: "Hip-Hop", Year: 2003},
	}

	if err := WriteParquet(path, rows); err != nil {
		t.Fatalf("WriteParquet failed: %v", err)
	}

	loaded, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded) != len(rows) {
		t.Fatalf("Expected %d rows, got %d", len(rows), len(loaded))
	}

	for i := range rows {
		if loaded[i] != rows[i] {
			t.Errorf("Row %d: expected %+v, got %+v", i, rows[i], loaded[i])
		}
	}

	sample, err := NewLoader(path).LoadSample(2)
	if err != nil {
		t.Fatalf("LoadSample failed: %v", err)
	}

	if len(sample) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(sample))
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	loader := NewLoader("rows.txt")

	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for unsupported format, got nil")
	}

	if _, err := loader.LoadSample(10); err == nil {
		t.Error("Expected error for unsupported format in LoadSample, got nil")
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	loader := NewLoader("/nonexistent/path/rows.jsonl")

	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}
