package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tdpmerge/internal"
	"tdpmerge/internal/util"
)

// NormalizeGreenAlgorithms rewrites the raw Green-Algorithms dataset into the
// augmented form the merger consumes: the one-line preamble is dropped, the
// "Any" sentinel row removed, a manufacturer column inferred from the model
// name, the "AMD" prefix stripped, and a thread count attached from the
// per-manufacturer tables. A model absent from its table is fatal: the tables
// are required to cover the dataset, and a silent default would poison the
// derived per-thread figures downstream.
func NormalizeGreenAlgorithms(rawPath, outPath string, amdThreads, intelThreads map[string]int) (int, error) {
	f, err := os.Open(rawPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return 0, err
	}
	// First line is a noisy "index,in Watt,,," preamble; the real header follows.
	if len(records) < 2 {
		return 0, fmt.Errorf("%s: no header row after preamble", rawPath)
	}
	header := records[1]
	table := &csvTable{header: header, rows: records[2:]}
	if err := table.requireHeaders("model"); err != nil {
		return 0, fmt.Errorf("%s: %w", rawPath, err)
	}
	modelIdx := table.headerIndex("model")

	outHeader := append(append([]string{}, header...), "manufacturer", "threads")
	outRows := [][]string{outHeader}

	for _, row := range table.rows {
		if modelIdx >= len(row) {
			continue
		}
		model := util.NormalizeSpaces(row[modelIdx])
		if model == "Any" {
			continue
		}

		manufacturer := internal.ManufacturerAMD
		threadTable := amdThreads
		if strings.Contains(model, "Xeon") || strings.Contains(model, "Core") {
			manufacturer = internal.ManufacturerIntel
			threadTable = intelThreads
		}

		model = util.CleanModelName(model, "AMD")
		threads, ok := threadTable[model]
		if !ok {
			return 0, fmt.Errorf("%s: no thread count for model %q in the %s table", rawPath, model, manufacturer)
		}

		out := append([]string{}, row...)
		out[modelIdx] = model
		out = append(out, string(manufacturer), strconv.Itoa(threads))
		outRows = append(outRows, out)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, err
	}
	dst, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	w := csv.NewWriter(dst)
	if err := w.WriteAll(outRows); err != nil {
		return 0, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, err
	}
	return len(outRows) - 1, nil
}
