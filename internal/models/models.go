package models

// Row represents a single song from the corpus
type Row struct {
	Song   string `json:"song" parquet:"song"`
	Artist string `json:"artist" parquet:"artist"`
	Lyrics string `json:"lyrics" parquet:"lyrics"`
	Genre  string `json:"genre" parquet:"genre"`
	Year   int    `json:"year" parquet:"year"`
}

// GroupStats is the per-group record written to the stats tables
type GroupStats struct {
	Label           string   `json:"label" yaml:"label"`
	Score           float64  `json:"score" yaml:"score"`                       // Mean of the lowest 100 distinctiveness scores
	SyllableAverage float64  `json:"syllable_average" yaml:"syllableaverage"` // Mean of per-song syllable averages
	TopWords        []string `json:"top_words" yaml:"topwords"`
}
