package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"tdpmerge/internal"
	"tdpmerge/internal/util"
)

const intelSourceURL = "https://www.intel.com/content/www/us/en/products/details/processors.html"

// Intel's comparison exports are transposed: after a two-row preamble comes a
// row of processor names, then labeled attribute rows. Only these labels matter.
var intelAttributeLabels = []string{"Product Collection", "Total Cores", "Total Threads", "TDP", "Processor Base Power"}

// ParseIntel walks a directory of per-product-family exports (.csv or .xlsx)
// and pivots each into one record per processor column. Newer families publish
// "Processor Base Power" instead of "TDP"; TDP wins when both are present.
func ParseIntel(dir string) ([]internal.ProcessorRecord, internal.SourceReport) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, internal.SkippedReport(internal.SourceIntel, dir, err)
	}

	report := internal.SourceReport{Source: internal.SourceIntel, Path: dir, Status: internal.SourceOK}
	out := []internal.ProcessorRecord{}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		rows, err := readFamilyRows(path)
		if err != nil {
			report.RowErrors = append(report.RowErrors, internal.RowError{
				Kind: internal.RowErrorParse,
				Msg:  fmt.Sprintf("%s: %v", entry.Name(), err),
			})
			continue
		}
		records, rowErrs := pivotFamilyRows(entry.Name(), rows)
		out = append(out, records...)
		report.RowErrors = append(report.RowErrors, rowErrs...)
	}

	report.Records = len(out)
	return out, report
}

func readFamilyRows(path string) ([][]string, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return f.GetRows(f.GetSheetName(0))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func pivotFamilyRows(file string, rows [][]string) ([]internal.ProcessorRecord, []internal.RowError) {
	const preambleRows = 2
	if len(rows) <= preambleRows {
		return nil, []internal.RowError{{
			Kind: internal.RowErrorParse,
			Msg:  fmt.Sprintf("%s: no processor name row after preamble", file),
		}}
	}

	nameRow := rows[preambleRows]
	if len(nameRow) < 2 {
		return nil, []internal.RowError{{
			Kind: internal.RowErrorParse,
			Msg:  fmt.Sprintf("%s: processor name row is empty", file),
		}}
	}
	names := nameRow[1:]
	attrs := make([]map[string]string, len(names))
	for i := range attrs {
		attrs[i] = map[string]string{}
	}

	for _, row := range rows[preambleRows+1:] {
		if len(row) == 0 {
			continue
		}
		label := util.NormalizeSpaces(row[0])
		if !isIntelAttribute(label) {
			continue
		}
		for i, value := range row[1:] {
			if i < len(attrs) {
				attrs[i][label] = value
			}
		}
	}

	out := make([]internal.ProcessorRecord, 0, len(names))
	var rowErrs []internal.RowError
	for i, name := range names {
		model := util.CleanModelName(name, "Intel")

		tdpRaw, ok := attrs[i]["TDP"]
		if !ok {
			tdpRaw, ok = attrs[i]["Processor Base Power"]
		}
		if !ok {
			rowErrs = append(rowErrs, internal.RowError{
				Line: i + 1, Kind: internal.RowErrorMissingField,
				Msg: fmt.Sprintf("%s: model %q: neither TDP nor Processor Base Power", file, model),
			})
			continue
		}
		if util.NormalizeSpaces(tdpRaw) == "" {
			rowErrs = append(rowErrs, internal.RowError{
				Line: i + 1, Kind: internal.RowErrorMissingField,
				Msg: fmt.Sprintf("%s: model %q: empty TDP value", file, model),
			})
			continue
		}

		tdp, err := util.ParseWatts(tdpRaw)
		if err != nil {
			rowErrs = append(rowErrs, intelRowError(file, i, model, err))
			continue
		}
		nCores, err := util.ParseCount(attrs[i]["Total Cores"])
		if err != nil {
			rowErrs = append(rowErrs, intelRowError(file, i, model, err))
			continue
		}
		nThreads, err := util.ParseCount(attrs[i]["Total Threads"])
		if err != nil {
			rowErrs = append(rowErrs, intelRowError(file, i, model, err))
			continue
		}

		out = append(out, internal.NewProcessorRecord(model, internal.ManufacturerIntel, tdp, nCores, nThreads, intelSourceURL))
	}

	return out, rowErrs
}

func isIntelAttribute(label string) bool {
	for _, known := range intelAttributeLabels {
		if label == known {
			return true
		}
	}
	return false
}

func intelRowError(file string, column int, model string, err error) internal.RowError {
	return internal.RowError{
		Line: column + 1, Kind: internal.RowErrorParse,
		Msg: fmt.Sprintf("%s: model %q: %v", file, model, err),
	}
}
