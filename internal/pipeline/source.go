package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// csvTable is a header-keyed view over a flat CSV export, the row-per-record
// layout used by every source except the transposed Intel family files.
type csvTable struct {
	header []string
	rows   [][]string
}

func readCSVTable(path string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file: %s", path)
	}

	header := records[0]
	if len(header) > 0 {
		// AMD exports with a UTF-8 BOM would otherwise miss their first header.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	return &csvTable{header: header, rows: records[1:]}, nil
}

func (t *csvTable) headerIndex(name string) int {
	for i, h := range t.header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func (t *csvTable) requireHeaders(names ...string) error {
	for _, name := range names {
		if t.headerIndex(name) < 0 {
			return fmt.Errorf("missing required header: %s", name)
		}
	}
	return nil
}

func (t *csvTable) cell(row []string, name string) string {
	idx := t.headerIndex(name)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
