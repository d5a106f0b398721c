package pipeline

import (
	"fmt"

	"tdpmerge/internal"
	"tdpmerge/internal/util"
)

const amdSourceURL = "https://www.amd.com/en/products/specifications/processors.html"

var amdRequiredHeaders = []string{"Name", "Default TDP", "# of CPU Cores", "# of Threads"}

// ParseAMD reads the AMD all-specification export, one processor per row.
func ParseAMD(path string) ([]internal.ProcessorRecord, internal.SourceReport) {
	table, err := readCSVTable(path)
	if err != nil {
		return nil, internal.SkippedReport(internal.SourceAMD, path, err)
	}
	if err := table.requireHeaders(amdRequiredHeaders...); err != nil {
		return nil, internal.SkippedReport(internal.SourceAMD, path, err)
	}

	report := internal.SourceReport{Source: internal.SourceAMD, Path: path, Status: internal.SourceOK}
	out := make([]internal.ProcessorRecord, 0, len(table.rows))

	for i, row := range table.rows {
		line := i + 2

		model := util.CleanModelName(table.cell(row, "Name"), "AMD")
		tdpRaw := util.NormalizeSpaces(table.cell(row, "Default TDP"))
		coresRaw := util.NormalizeSpaces(table.cell(row, "# of CPU Cores"))
		threadsRaw := util.NormalizeSpaces(table.cell(row, "# of Threads"))

		// Plenty of AMD rows simply have no TDP or count published.
		if tdpRaw == "" || coresRaw == "" || threadsRaw == "" {
			report.RowErrors = append(report.RowErrors, internal.RowError{
				Line: line, Kind: internal.RowErrorMissingField,
				Msg: fmt.Sprintf("model %q: incomplete TDP/core/thread data", model),
			})
			continue
		}

		tdp, err := util.ParseWatts(tdpRaw)
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}
		nCores, err := util.ParseCount(coresRaw)
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}
		nThreads, err := util.ParseCount(threadsRaw)
		if err != nil {
			report.RowErrors = append(report.RowErrors, rowParseError(line, model, err))
			continue
		}

		out = append(out, internal.NewProcessorRecord(model, internal.ManufacturerAMD, tdp, nCores, nThreads, amdSourceURL))
	}

	report.Records = len(out)
	return out, report
}

func rowParseError(line int, model string, err error) internal.RowError {
	return internal.RowError{
		Line: line, Kind: internal.RowErrorParse,
		Msg: fmt.Sprintf("model %q: %v", model, err),
	}
}
