package pipeline

import (
	"tdpmerge/internal"
	"tdpmerge/internal/util"
)

const (
	ampereAltraSourceURL = "https://amperecomputing.com/briefs/ampere-altra-family-product-brief"
	ampereOneSourceURL   = "https://amperecomputing.com/briefs/ampereone-family-product-brief"
)

var (
	ampereAltraRequiredHeaders = []string{"PRODUCT NAME", "CORES", "USAGE POWER (W)"}
	ampereOneRequiredHeaders   = []string{"Processor Model", "Core Count", "Usage Power*"}
)

// ParseAmpereAltra reads the Altra family brief export. The sheet reports no
// thread counts; Altra cores are single-threaded, so threads equal cores. The
// bare product names ("Q64-22") get an "AmpereAltra " prefix to keep them from
// colliding with other vendors' numeric-only models.
func ParseAmpereAltra(path string) ([]internal.ProcessorRecord, internal.SourceReport) {
	table, err := readCSVTable(path)
	if err != nil {
		return nil, internal.SkippedReport(internal.SourceAmpereAltra, path, err)
	}
	if err := table.requireHeaders(ampereAltraRequiredHeaders...); err != nil {
		return nil, internal.SkippedReport(internal.SourceAmpereAltra, path, err)
	}

	report := internal.SourceReport{Source: internal.SourceAmpereAltra, Path: path, Status: internal.SourceOK}
	out := make([]internal.ProcessorRecord, 0, len(table.rows))

	for i, row := range table.rows {
		line := i + 2
		model := "AmpereAltra " + util.NormalizeSpaces(table.cell(row, "PRODUCT NAME"))

		tdp, err := util.ParseWatts(table.cell(row, "USAGE POWER (W)"))
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}
		nCores, err := util.ParseCount(table.cell(row, "CORES"))
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}

		out = append(out, internal.NewProcessorRecord(model, internal.ManufacturerAmpere, tdp, nCores, nCores, ampereAltraSourceURL))
	}

	report.Records = len(out)
	return out, report
}

// ParseAmpereOne reads the AmpereOne family brief export. Threads equal cores
// here as well.
func ParseAmpereOne(path string) ([]internal.ProcessorRecord, internal.SourceReport) {
	table, err := readCSVTable(path)
	if err != nil {
		return nil, internal.SkippedReport(internal.SourceAmpereOne, path, err)
	}
	if err := table.requireHeaders(ampereOneRequiredHeaders...); err != nil {
		return nil, internal.SkippedReport(internal.SourceAmpereOne, path, err)
	}

	report := internal.SourceReport{Source: internal.SourceAmpereOne, Path: path, Status: internal.SourceOK}
	out := make([]internal.ProcessorRecord, 0, len(table.rows))

	for i, row := range table.rows {
		line := i + 2
		model := util.CleanModelName(table.cell(row, "Processor Model"))

		tdp, err := util.ParseWatts(table.cell(row, "Usage Power*"))
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}
		nCores, err := util.ParseCount(table.cell(row, "Core Count"))
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}

		out = append(out, internal.NewProcessorRecord(model, internal.ManufacturerAmpere, tdp, nCores, nCores, ampereOneSourceURL))
	}

	report.Records = len(out)
	return out, report
}
