package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tdpmerge/internal"
)

func TestExportCSVFormat(t *testing.T) {
	records := []internal.ProcessorRecord{
		internal.NewProcessorRecord("Ryzen 5 3600", internal.ManufacturerAMD, 65, 6, 12, "https://www.amd.com/en/products/specifications/processors.html"),
		internal.NewProcessorRecord("AmpereAltra Q80-30", internal.ManufacturerAmpere, 210, 80, 80, "https://amperecomputing.com/briefs/ampere-altra-family-product-brief"),
	}

	out := filepath.Join(t.TempDir(), "TDP_cpu.v2.2.csv")
	require.NoError(t, ExportCSV(records, out))

	blob, err := os.ReadFile(out)
	require.NoError(t, err)

	want := "index,in Watt,,,\n" +
		"model,TDP,n_cores,TDP_per_core,source\n" +
		"Ryzen 5 3600,65,6,10.833333333333334,https://www.amd.com/en/products/specifications/processors.html\n" +
		"AmpereAltra Q80-30,210,80,2.625,https://amperecomputing.com/briefs/ampere-altra-family-product-brief"
	assert.Equal(t, want, string(blob))
}

func TestExportCSVZeroCores(t *testing.T) {
	records := []internal.ProcessorRecord{
		internal.NewProcessorRecord("Mystery", internal.ManufacturerIntel, 95, 0, 0, "https://example.invalid"),
	}

	out := filepath.Join(t.TempDir(), "merged.csv")
	require.NoError(t, ExportCSV(records, out))

	blob, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(blob), "Mystery,95,0,0,https://example.invalid")
}

func TestExportXLSX(t *testing.T) {
	records := []internal.ProcessorRecord{
		internal.NewProcessorRecord("Xeon Gold 6148", internal.ManufacturerIntel, 150, 20, 40, "https://www.intel.com/content/www/us/en/products/details/processors.html"),
	}

	out := filepath.Join(t.TempDir(), "processors.xlsx")
	require.NoError(t, ExportXLSX(records, out))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"model", "manufacturer", "TDP", "n_cores", "n_threads", "TDP_per_core", "TDP_per_thread", "source"}, rows[0])
	assert.Equal(t, "Xeon Gold 6148", rows[1][0])
	assert.Equal(t, "Intel", rows[1][1])
	assert.Equal(t, "150", rows[1][2])
	assert.Equal(t, "40", rows[1][4])
	assert.Equal(t, "3.75", rows[1][6])
}
