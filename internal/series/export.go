package series

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSV writes a figure's points as genre,year,average rows
func WriteCSV(dir string, fig Figure, set Set) (string, error) {
	path := filepath.Join(dir, fig.Name+".csv")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create series file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"genre", "year", "average"}); err != nil {
		return "", err
	}
	for _, g := range fig.Genres {
		for _, p := range set[g] {
			row := []string{g, strconv.Itoa(p.Year), strconv.FormatFloat(p.Average, 'f', 4, 64)}
			if err := writer.Write(row); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to write series file: %w", err)
	}
	return path, nil
}

type jsonSeries struct {
	Genre  string  `json:"genre"`
	Points []Point `json:"points"`
}

type jsonFigure struct {
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Series []jsonSeries `json:"series"`
}

// WriteJSON writes a figure with its title and axis labels
func WriteJSON(dir string, fig Figure, set Set) (string, error) {
	out := jsonFigure{
		Title:  fig.Title,
		XLabel: "Year",
		YLabel: "Average Syllables Per Song",
		Series: make([]jsonSeries, 0, len(fig.Genres)),
	}
	for _, g := range fig.Genres {
		out.Series = append(out.Series, jsonSeries{Genre: g, Points: set[g]})
	}

	path := filepath.Join(dir, fig.Name+".json")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create series file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return "", fmt.Errorf("failed to encode series to JSON: %w", err)
	}
	return path, nil
}

// Export writes every figure in the given format ("csv" or "json")
func Export(dir, format string, figs []Figure, set Set) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var write func(string, Figure, Set) (string, error)
	switch format {
	case "csv":
		write = WriteCSV
	case "json":
		write = WriteJSON
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	paths := make([]string, 0, len(figs))
	for _, fig := range figs {
		path, err := write(dir, fig, set)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
