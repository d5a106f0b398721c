package pipeline

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"tdpmerge/internal"
)

// ExportCSV writes the merged table in the fixed downstream format: a
// two-line preamble, then one line per record with only the model, TDP, core
// count, per-core ratio and provenance columns. Fields go out unquoted even
// when they contain commas, which rules out encoding/csv here.
func ExportCSV(records []internal.ProcessorRecord, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprint(w, "index,in Watt,,,\n")
	fmt.Fprint(w, "model,TDP,n_cores,TDP_per_core,source")
	for _, rec := range records {
		fmt.Fprintf(w, "\n%s,%s,%d,%s,%s",
			rec.Model,
			formatFloat(rec.TDP),
			rec.NCores,
			formatFloat(rec.TDPPerCore),
			rec.Source,
		)
	}
	return w.Flush()
}

// ExportXLSX writes the full record set, including the manufacturer and
// thread-derived fields the final CSV intentionally drops.
func ExportXLSX(records []internal.ProcessorRecord, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"model", "manufacturer", "TDP", "n_cores", "n_threads",
		"TDP_per_core", "TDP_per_thread", "source",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, rec := range records {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, rec.Model)
		set(2, string(rec.Manufacturer))
		set(3, rec.TDP)
		set(4, rec.NCores)
		set(5, rec.NThreads)
		set(6, rec.TDPPerCore)
		set(7, rec.TDPPerThread)
		set(8, rec.Source)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
