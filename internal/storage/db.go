package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"tdpmerge/internal"
)

// DB is the audit store for merge runs: which sources contributed, which rows
// were skipped and why, and the merged processor set of the latest run.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  records INTEGER NOT NULL,
  durationMs REAL NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS source_reports (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  runId INTEGER NOT NULL,
  source TEXT NOT NULL,
  path TEXT NOT NULL,
  status TEXT NOT NULL,
  skipReason TEXT,
  records INTEGER NOT NULL,
  rowErrors INTEGER NOT NULL,
  FOREIGN KEY(runId) REFERENCES runs(id)
);

CREATE TABLE IF NOT EXISTS row_errors (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  reportId INTEGER NOT NULL,
  line INTEGER NOT NULL,
  kind TEXT NOT NULL,
  message TEXT NOT NULL,
  FOREIGN KEY(reportId) REFERENCES source_reports(id)
);

CREATE TABLE IF NOT EXISTS processors (
  model TEXT PRIMARY KEY,
  manufacturer TEXT NOT NULL,
  tdp REAL NOT NULL,
  nCores INTEGER NOT NULL,
  nThreads INTEGER NOT NULL,
  tdpPerCore REAL NOT NULL,
  tdpPerThread REAL NOT NULL,
  source TEXT NOT NULL,
  runId INTEGER NOT NULL,
  position INTEGER NOT NULL,
  FOREIGN KEY(runId) REFERENCES runs(id)
);
CREATE INDEX IF NOT EXISTS idx_processors_manufacturer ON processors(manufacturer);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(traceID string, records int, duration time.Duration) (int64, error) {
	res, err := d.conn.Exec(`
INSERT INTO runs (traceId, records, durationMs) VALUES (?, ?, ?)
`, traceID, records, float64(duration.Milliseconds()))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (d *DB) InsertSourceReport(runID int64, report internal.SourceReport) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
INSERT INTO source_reports (runId, source, path, status, skipReason, records, rowErrors)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, runID, string(report.Source), report.Path, string(report.Status), report.SkipReason, report.Records, len(report.RowErrors))
	if err != nil {
		return err
	}
	reportID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO row_errors (reportId, line, kind, message) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, rowErr := range report.RowErrors {
		if _, err := stmt.Exec(reportID, rowErr.Line, string(rowErr.Kind), rowErr.Msg); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ReplaceProcessors swaps in the merged set of a run wholesale. The table is
// rebuilt from scratch every run, never updated incrementally.
func (d *DB) ReplaceProcessors(runID int64, records []internal.ProcessorRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM processors`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO processors (model, manufacturer, tdp, nCores, nThreads, tdpPerCore, tdpPerThread, source, runId, position)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.Exec(
			rec.Model, string(rec.Manufacturer), rec.TDP, rec.NCores, rec.NThreads,
			rec.TDPPerCore, rec.TDPPerThread, rec.Source, runID, i,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListProcessors returns the latest merged set in its original merge order.
func (d *DB) ListProcessors() ([]internal.ProcessorRecord, error) {
	rows, err := d.conn.Query(`
SELECT model, manufacturer, tdp, nCores, nThreads, tdpPerCore, tdpPerThread, source
FROM processors ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ProcessorRecord
	for rows.Next() {
		var rec internal.ProcessorRecord
		var manufacturer string
		if err := rows.Scan(
			&rec.Model, &manufacturer, &rec.TDP, &rec.NCores, &rec.NThreads,
			&rec.TDPPerCore, &rec.TDPPerThread, &rec.Source,
		); err != nil {
			return nil, err
		}
		rec.Manufacturer = internal.Manufacturer(manufacturer)
		out = append(out, rec)
	}

	return out, rows.Err()
}

func (d *DB) LatestRunTraceID() (string, error) {
	var trace string
	err := d.conn.QueryRow(`SELECT traceId FROM runs ORDER BY id DESC LIMIT 1`).Scan(&trace)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return trace, nil
}
