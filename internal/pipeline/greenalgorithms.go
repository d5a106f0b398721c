package pipeline

import (
	"tdpmerge/internal"
	"tdpmerge/internal/util"
)

var greenAlgorithmsRequiredHeaders = []string{"model", "TDP", "n_cores", "TDP_per_core", "source", "manufacturer", "threads"}

// ParseGreenAlgorithms reads the normalized Green-Algorithms dataset, the file
// NormalizeGreenAlgorithms writes. Manufacturer and provenance travel in the
// rows themselves; the per-core ratio column is recomputed rather than trusted.
func ParseGreenAlgorithms(path string) ([]internal.ProcessorRecord, internal.SourceReport) {
	table, err := readCSVTable(path)
	if err != nil {
		return nil, internal.SkippedReport(internal.SourceGreenAlgorithms, path, err)
	}
	if err := table.requireHeaders(greenAlgorithmsRequiredHeaders...); err != nil {
		return nil, internal.SkippedReport(internal.SourceGreenAlgorithms, path, err)
	}

	report := internal.SourceReport{Source: internal.SourceGreenAlgorithms, Path: path, Status: internal.SourceOK}
	out := make([]internal.ProcessorRecord, 0, len(table.rows))

	for i, row := range table.rows {
		line := i + 2
		model := util.NormalizeSpaces(table.cell(row, "model"))
		manufacturer := internal.Manufacturer(util.NormalizeSpaces(table.cell(row, "manufacturer")))

		tdp, err := util.ParseWatts(table.cell(row, "TDP"))
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}
		nCores, err := util.ParseCount(table.cell(row, "n_cores"))
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}
		nThreads, err := util.ParseCount(table.cell(row, "threads"))
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}

		source := util.NormalizeSpaces(table.cell(row, "source"))
		out = append(out, internal.NewProcessorRecord(model, manufacturer, tdp, nCores, nThreads, source))
	}

	report.Records = len(out)
	return out, report
}
