// Package store is the persistent keyed store behind the control loop: the
// rollback singleton, both shadow-diff histories, and the decision-record
// audit log, all in one SQLite database.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/loopmarket/match-canary/go-controller/internal/decision"
	"github.com/loopmarket/match-canary/go-controller/internal/rollback"
	"github.com/loopmarket/match-canary/go-controller/internal/shadow"
	_ "modernc.org/sqlite"
)

// timeLayout is RFC 3339 with fixed-width nanoseconds. recorded_at is a TEXT
// ordering key; a variable-width format would make lexicographic order
// disagree with chronological order across sub-second precision.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS rollback_state (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	state_json    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS shadow_diffs (
	run_id        TEXT PRIMARY KEY,
	recorded_at   TEXT NOT NULL,
	record_json   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS alt_shadow_diffs (
	run_id        TEXT PRIMARY KEY,
	recorded_at   TEXT NOT NULL,
	record_json   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS decision_records (
	run_id        TEXT PRIMARY KEY,
	recorded_at   TEXT NOT NULL,
	record_json   TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store manages the control loop's persisted state in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region rollback-state

// GetRollbackState reads the singleton rollback state; a database with no
// row yet yields the empty initial state.
func (s *Store) GetRollbackState() (rollback.State, error) {
	var raw string
	err := s.db.QueryRow(`SELECT state_json FROM rollback_state WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		return rollback.State{}, nil
	}
	if err != nil {
		return rollback.State{}, fmt.Errorf("get rollback state: %w", err)
	}
	var st rollback.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return rollback.State{}, fmt.Errorf("unmarshal rollback state: %w", err)
	}
	return st, nil
}

// PutRollbackState upserts the singleton rollback state.
func (s *Store) PutRollbackState(st rollback.State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal rollback state: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO rollback_state (id, state_json, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET state_json = excluded.state_json, updated_at = excluded.updated_at`,
		string(raw), time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("put rollback state: %w", err)
	}
	return nil
}

// ResetRollbackState restores the empty initial state. This is the operator
// path; nothing in the control loop calls it.
func (s *Store) ResetRollbackState() error {
	if _, err := s.db.Exec(`DELETE FROM rollback_state WHERE id = 1`); err != nil {
		return fmt.Errorf("reset rollback state: %w", err)
	}
	return nil
}

// #endregion rollback-state

// #region shadow-diffs

// PutShadowDiff inserts one shadow-diff record and prunes the history to the
// maxKept newest entries, atomically.
func (s *Store) PutShadowDiff(rec shadow.DiffRecord, maxKept int) error {
	return s.putDiff("shadow_diffs", rec, maxKept)
}

// PutAltShadowDiff does the same for the alternate-shadow history.
func (s *Store) PutAltShadowDiff(rec shadow.DiffRecord, maxKept int) error {
	return s.putDiff("alt_shadow_diffs", rec, maxKept)
}

func (s *Store) putDiff(table string, rec shadow.DiffRecord, maxKept int) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal diff record: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO `+table+` (run_id, recorded_at, record_json) VALUES (?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET recorded_at = excluded.recorded_at, record_json = excluded.record_json`,
		rec.RunID, rec.RecordedAt.UTC().Format(timeLayout), string(raw),
	)
	if err != nil {
		return fmt.Errorf("insert diff: %w", err)
	}

	// Oldest-first eviction down to maxKept.
	_, err = tx.Exec(
		`DELETE FROM `+table+` WHERE run_id NOT IN (
			SELECT run_id FROM `+table+` ORDER BY recorded_at DESC, rowid DESC LIMIT ?
		)`, maxKept,
	)
	if err != nil {
		return fmt.Errorf("prune diffs: %w", err)
	}

	return tx.Commit()
}

// GetShadowDiff retrieves one shadow-diff record by run id; nil when absent.
func (s *Store) GetShadowDiff(runID string) (*shadow.DiffRecord, error) {
	return s.getDiff("shadow_diffs", runID)
}

// GetAltShadowDiff retrieves one alternate-shadow record by run id.
func (s *Store) GetAltShadowDiff(runID string) (*shadow.DiffRecord, error) {
	return s.getDiff("alt_shadow_diffs", runID)
}

func (s *Store) getDiff(table, runID string) (*shadow.DiffRecord, error) {
	var raw string
	err := s.db.QueryRow(`SELECT record_json FROM `+table+` WHERE run_id = ?`, runID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get diff %s: %w", runID, err)
	}
	var rec shadow.DiffRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal diff %s: %w", runID, err)
	}
	return &rec, nil
}

// CountShadowDiffs returns the shadow-diff history size.
func (s *Store) CountShadowDiffs() (int, error) {
	return s.countRows("shadow_diffs")
}

// CountAltShadowDiffs returns the alternate-shadow history size.
func (s *Store) CountAltShadowDiffs() (int, error) {
	return s.countRows("alt_shadow_diffs")
}

func (s *Store) countRows(table string) (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// #endregion shadow-diffs

// #region decision-records

// PutDecisionRecord stores one run's audit record.
func (s *Store) PutDecisionRecord(rec decision.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal decision record: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO decision_records (run_id, recorded_at, record_json) VALUES (?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET recorded_at = excluded.recorded_at, record_json = excluded.record_json`,
		rec.RunID, rec.RecordedAt.UTC().Format(timeLayout), string(raw),
	)
	if err != nil {
		return fmt.Errorf("put decision record: %w", err)
	}
	return nil
}

// GetDecisionRecord retrieves one audit record by run id; nil when absent.
func (s *Store) GetDecisionRecord(runID string) (*decision.Record, error) {
	var raw string
	err := s.db.QueryRow(`SELECT record_json FROM decision_records WHERE run_id = ?`, runID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get decision record %s: %w", runID, err)
	}
	var rec decision.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal decision record %s: %w", runID, err)
	}
	return &rec, nil
}

// ListDecisionRecords returns the most recent audit records, newest first.
func (s *Store) ListDecisionRecords(limit int) ([]decision.Record, error) {
	rows, err := s.db.Query(
		`SELECT record_json FROM decision_records ORDER BY recorded_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list decision records: %w", err)
	}
	defer rows.Close()

	var records []decision.Record
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		var rec decision.Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal decision record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion decision-records
