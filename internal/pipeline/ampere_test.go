package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tdpmerge/internal"
)

func TestParseAmpereAltra(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "ampere-altra-specification.csv",
		"PRODUCT NAME,CORES,USAGE POWER (W)\n"+
			"Q80-30,80.0,210\n"+
			"M128-30,128.0,250\n")

	records, report := ParseAmpereAltra(path)
	require.Equal(t, internal.SourceOK, report.Status)
	require.Len(t, records, 2)

	rec := records[0]
	assert.Equal(t, "AmpereAltra Q80-30", rec.Model)
	assert.Equal(t, internal.ManufacturerAmpere, rec.Manufacturer)
	assert.Equal(t, 210.0, rec.TDP)
	assert.Equal(t, 80, rec.NCores)
	assert.Equal(t, 80, rec.NThreads, "threads default to cores")
	assert.Equal(t, 2.625, rec.TDPPerCore)
	assert.Equal(t, rec.TDPPerCore, rec.TDPPerThread)
}

func TestParseAmpereOne(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "ampere-one-specification.csv",
		"Processor Model,Core Count,Usage Power*\n"+
			"AmpereOne® A192-32X,192,350W\n")

	records, report := ParseAmpereOne(path)
	require.Equal(t, internal.SourceOK, report.Status)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "AmpereOne A192-32X", rec.Model)
	assert.Equal(t, 350.0, rec.TDP)
	assert.Equal(t, 192, rec.NCores)
	assert.Equal(t, 192, rec.NThreads)
}

func TestParseAmpereOneBadRow(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "ampere-one-specification.csv",
		"Processor Model,Core Count,Usage Power*\n"+
			"AmpereOne® A096-26,96,TBD\n"+
			"AmpereOne® A144-28,144,300W\n")

	records, report := ParseAmpereOne(path)
	require.Len(t, records, 1)
	assert.Equal(t, "AmpereOne A144-28", records[0].Model)
	require.Len(t, report.RowErrors, 1)
	assert.Equal(t, internal.RowErrorParse, report.RowErrors[0].Kind)
}

func TestParseAmpereMissingHeaderSkipsSource(t *testing.T) {
	path := writeFixture(t, t.TempDir(), "ampere-altra-specification.csv",
		"PRODUCT NAME,CORES\nQ80-30,80\n")

	records, report := ParseAmpereAltra(path)
	assert.Empty(t, records)
	assert.True(t, report.Skipped())
	assert.Contains(t, report.SkipReason, "USAGE POWER (W)")
}
