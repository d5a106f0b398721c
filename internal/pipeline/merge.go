package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"tdpmerge/internal"
	"tdpmerge/internal/config"
	"tdpmerge/internal/logger"
	"tdpmerge/internal/storage"
)

// MergeService runs the five source parsers in their fixed order, writes the
// merged table, and records the run in the audit store.
type MergeService struct {
	db  *storage.DB
	cfg config.Config
}

func NewMergeService(db *storage.DB, cfg config.Config) *MergeService {
	return &MergeService{db: db, cfg: cfg}
}

type MergeResult struct {
	TraceID string
	Records int
	Reports []internal.SourceReport
}

// MergeSources parses every source into a fresh accumulator. The order is
// fixed, and later sources overwrite earlier ones on model-name collision, so
// Green-Algorithms figures take precedence over the vendor exports.
func MergeSources(cfg config.Config) (*Accumulator, []internal.SourceReport) {
	sources := []func() ([]internal.ProcessorRecord, internal.SourceReport){
		func() ([]internal.ProcessorRecord, internal.SourceReport) { return ParseAMD(cfg.AMDSpecPath) },
		func() ([]internal.ProcessorRecord, internal.SourceReport) { return ParseAmpereAltra(cfg.AmpereAltraPath) },
		func() ([]internal.ProcessorRecord, internal.SourceReport) { return ParseAmpereOne(cfg.AmpereOnePath) },
		func() ([]internal.ProcessorRecord, internal.SourceReport) { return ParseIntel(cfg.IntelDir) },
		func() ([]internal.ProcessorRecord, internal.SourceReport) { return ParseGreenAlgorithms(cfg.GreenAlgorithmsOut) },
	}

	acc := NewAccumulator()
	reports := make([]internal.SourceReport, 0, len(sources))
	for _, parse := range sources {
		records, report := parse()
		for _, rec := range records {
			acc.Put(rec)
		}
		logReport(report)
		reports = append(reports, report)
	}
	return acc, reports
}

func (s *MergeService) Run() (MergeResult, error) {
	start := time.Now()
	acc, reports := MergeSources(s.cfg)

	if err := ExportCSV(acc.Records(), s.cfg.MergedCSVPath); err != nil {
		return MergeResult{}, fmt.Errorf("write merged table: %w", err)
	}

	trace := traceID()
	runID, err := s.db.InsertRun(trace, acc.Len(), time.Since(start))
	if err != nil {
		return MergeResult{}, err
	}
	for _, report := range reports {
		if err := s.db.InsertSourceReport(runID, report); err != nil {
			return MergeResult{}, err
		}
	}
	if err := s.db.ReplaceProcessors(runID, acc.Records()); err != nil {
		return MergeResult{}, err
	}

	logger.Info().
		Str("trace", trace).
		Int("records", acc.Len()).
		Str("output", s.cfg.MergedCSVPath).
		Msg("merge complete")

	return MergeResult{TraceID: trace, Records: acc.Len(), Reports: reports}, nil
}

func logReport(report internal.SourceReport) {
	if report.Skipped() {
		logger.Warn().
			Str("source", string(report.Source)).
			Str("path", report.Path).
			Str("reason", report.SkipReason).
			Msg("source skipped")
		return
	}

	for _, rowErr := range report.RowErrors {
		event := logger.Warn()
		if rowErr.Kind == internal.RowErrorMissingField {
			event = logger.Debug()
		}
		event.
			Str("source", string(report.Source)).
			Int("line", rowErr.Line).
			Str("kind", string(rowErr.Kind)).
			Msg(rowErr.Msg)
	}

	logger.Info().
		Str("source", string(report.Source)).
		Int("records", report.Records).
		Int("rowErrors", len(report.RowErrors)).
		Msg("source parsed")
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
