package internal

type Manufacturer string

const (
	ManufacturerAMD    Manufacturer = "AMD"
	ManufacturerIntel  Manufacturer = "Intel"
	ManufacturerAmpere Manufacturer = "Ampere"
)

type SourceKind string

const (
	SourceAMD             SourceKind = "amd"
	SourceAmpereAltra     SourceKind = "ampere_altra"
	SourceAmpereOne       SourceKind = "ampere_one"
	SourceIntel           SourceKind = "intel"
	SourceGreenAlgorithms SourceKind = "green_algorithms"
)

// ProcessorRecord is one normalized row of the final lookup table. Records are
// built once and never mutated; the merged table is rebuilt from scratch each run.
type ProcessorRecord struct {
	Model        string
	Manufacturer Manufacturer
	TDP          float64
	NCores       int
	NThreads     int
	TDPPerCore   float64
	TDPPerThread float64
	Source       string
}

// NewProcessorRecord derives the per-core and per-thread ratios, keeping them 0
// when the denominator is 0.
func NewProcessorRecord(model string, manufacturer Manufacturer, tdp float64, nCores, nThreads int, source string) ProcessorRecord {
	return ProcessorRecord{
		Model:        model,
		Manufacturer: manufacturer,
		TDP:          tdp,
		NCores:       nCores,
		NThreads:     nThreads,
		TDPPerCore:   ratio(tdp, nCores),
		TDPPerThread: ratio(tdp, nThreads),
		Source:       source,
	}
}

func ratio(tdp float64, n int) float64 {
	if n > 0 {
		return tdp / float64(n)
	}
	return 0
}

type RowErrorKind string

const (
	RowErrorParse        RowErrorKind = "parse"
	RowErrorMissingField RowErrorKind = "missing_field"
)

// RowError records a single skipped input row. A bad row never aborts its
// source; rows are collected so a run can report exact counts per kind.
type RowError struct {
	Line int
	Kind RowErrorKind
	Msg  string
}

type SourceStatus string

const (
	SourceOK      SourceStatus = "ok"
	SourceSkipped SourceStatus = "skipped"
)

// SourceReport is the outcome of parsing one vendor source. A skipped source
// (missing file, missing required header) contributes zero records and leaves
// the other sources untouched.
type SourceReport struct {
	Source     SourceKind
	Path       string
	Status     SourceStatus
	SkipReason string
	Records    int
	RowErrors  []RowError
}

func (r SourceReport) Skipped() bool {
	return r.Status == SourceSkipped
}

func SkippedReport(source SourceKind, path string, reason error) SourceReport {
	return SourceReport{Source: source, Path: path, Status: SourceSkipped, SkipReason: reason.Error()}
}
