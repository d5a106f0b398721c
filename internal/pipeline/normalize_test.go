package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greenAlgorithmsRaw = "index,in Watt,,,\n" +
	"model,TDP,n_cores,TDP_per_core,source\n" +
	"Any,12,1,12,https://github.com/GreenAlgorithms/green-algorithms-tool\n" +
	"AMD Ryzen 5 3600,65,6,10.8,https://github.com/GreenAlgorithms/green-algorithms-tool\n" +
	"Xeon Gold 6148,150,20,7.5,https://github.com/GreenAlgorithms/green-algorithms-tool\n" +
	"Core i7-10700K,125,8,15.6,https://github.com/GreenAlgorithms/green-algorithms-tool\n"

func TestNormalizeGreenAlgorithms(t *testing.T) {
	tmp := t.TempDir()
	rawPath := writeFixture(t, tmp, "TDP_cpu.v2.2.csv", greenAlgorithmsRaw)
	outPath := filepath.Join(tmp, "TDP_cpu.v2.2.updated.csv")

	amdThreads := map[string]int{"Ryzen 5 3600": 12}
	intelThreads := map[string]int{"Xeon Gold 6148": 40, "Core i7-10700K": 16}

	count, err := NormalizeGreenAlgorithms(rawPath, outPath, amdThreads, intelThreads)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "sentinel row dropped")

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"model", "TDP", "n_cores", "TDP_per_core", "source", "manufacturer", "threads"}, rows[0])

	assert.Equal(t, "Ryzen 5 3600", rows[1][0], "AMD prefix stripped")
	assert.Equal(t, "AMD", rows[1][5])
	assert.Equal(t, "12", rows[1][6])

	assert.Equal(t, "Xeon Gold 6148", rows[2][0])
	assert.Equal(t, "Intel", rows[2][5])
	assert.Equal(t, "40", rows[2][6])

	assert.Equal(t, "Intel", rows[3][5], "Core models are Intel")
	assert.Equal(t, "16", rows[3][6])
}

func TestNormalizeGreenAlgorithmsMissingThreadEntryIsFatal(t *testing.T) {
	tmp := t.TempDir()
	rawPath := writeFixture(t, tmp, "TDP_cpu.v2.2.csv", greenAlgorithmsRaw)
	outPath := filepath.Join(tmp, "TDP_cpu.v2.2.updated.csv")

	_, err := NormalizeGreenAlgorithms(rawPath, outPath, map[string]int{"Ryzen 5 3600": 12}, map[string]int{"Xeon Gold 6148": 40})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no thread count")
	assert.Contains(t, err.Error(), "Core i7-10700K")
}

func TestNormalizeGreenAlgorithmsMissingModelHeader(t *testing.T) {
	tmp := t.TempDir()
	rawPath := writeFixture(t, tmp, "bad.csv", "index,in Watt,,,\nname,TDP\nAny,12\n")

	_, err := NormalizeGreenAlgorithms(rawPath, filepath.Join(tmp, "out.csv"), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required header: model")
}
