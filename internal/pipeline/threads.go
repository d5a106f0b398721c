package pipeline

import (
	"fmt"

	"tdpmerge/internal/util"
)

// LoadThreadTable reads a model→thread-count table from a CSV data file with
// columns model,threads. The tables ship next to the Green-Algorithms dataset
// and must stay in sync with its model list; they are validated here so a bad
// edit fails before any row is normalized.
func LoadThreadTable(path string) (map[string]int, error) {
	table, err := readCSVTable(path)
	if err != nil {
		return nil, err
	}
	if err := table.requireHeaders("model", "threads"); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	out := make(map[string]int, len(table.rows))
	for i, row := range table.rows {
		model := util.NormalizeSpaces(table.cell(row, "model"))
		if model == "" {
			return nil, fmt.Errorf("%s: empty model on line %d", path, i+2)
		}
		if _, dup := out[model]; dup {
			return nil, fmt.Errorf("%s: duplicate model %q", path, model)
		}
		threads, err := util.ParseCount(table.cell(row, "threads"))
		if err != nil {
			return nil, fmt.Errorf("%s: model %q: %w", path, model, err)
		}
		if threads <= 0 {
			return nil, fmt.Errorf("%s: model %q: thread count must be positive", path, model)
		}
		out[model] = threads
	}
	return out, nil
}
