// Package runledger provides a small SQLite-backed record of completed
// generation tasks, following the teacher's storage.Store pattern
// (examples/catacombs/storage/storage.go): sql.Open + a migrate step run
// once at construction, plain database/sql queries elsewhere. The driver is
// modernc.org/sqlite (pure Go, already a direct dependency of the teacher's
// module) rather than the teacher's own cgo-based mattn/go-sqlite3, so the
// generator stays cgo-free.
package runledger

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Ledger records completed generation tasks keyed by output path; Lookup
// reports whether a path has been recorded. cmd/ra-gen only writes to the
// ledger: whether an existing output is skipped is decided by taskrunner
// from the filesystem, not from the ledger.
type Ledger struct {
	db *sql.DB
}

// Entry is one completed-task record.
type Entry struct {
	OutputPath   string
	ParamsJSON   string
	Seed         int64
	NLocations   int
	NTransitions int
	CompletedAt  time.Time
}

// Open creates or opens the ledger database at path, running its schema
// migration.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("runledger: open: %w", err)
	}
	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("runledger: migrate: %w", err)
	}
	return l, nil
}

func (l *Ledger) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS completed_tasks (
		output_path   TEXT PRIMARY KEY,
		params_json   TEXT NOT NULL,
		seed          INTEGER NOT NULL,
		n_locations   INTEGER NOT NULL,
		n_transitions INTEGER NOT NULL,
		completed_at  DATETIME NOT NULL
	);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close closes the underlying database connection.
func (l *Ledger) Close() error { return l.db.Close() }

// Record upserts a completed-task entry: a second call for the same
// OutputPath overwrites the prior row rather than erroring, matching a
// rerun that regenerates the same output.
func (l *Ledger) Record(e Entry) error {
	const stmt = `
	INSERT INTO completed_tasks (output_path, params_json, seed, n_locations, n_transitions, completed_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(output_path) DO UPDATE SET
		params_json = excluded.params_json,
		seed = excluded.seed,
		n_locations = excluded.n_locations,
		n_transitions = excluded.n_transitions,
		completed_at = excluded.completed_at;
	`
	_, err := l.db.Exec(stmt, e.OutputPath, e.ParamsJSON, e.Seed, e.NLocations, e.NTransitions, e.CompletedAt)
	if err != nil {
		return fmt.Errorf("runledger: record %q: %w", e.OutputPath, err)
	}
	return nil
}

// Lookup returns the entry for outputPath, if one is recorded.
func (l *Ledger) Lookup(outputPath string) (Entry, bool, error) {
	row := l.db.QueryRow(`
		SELECT output_path, params_json, seed, n_locations, n_transitions, completed_at
		FROM completed_tasks WHERE output_path = ?`, outputPath)

	var e Entry
	err := row.Scan(&e.OutputPath, &e.ParamsJSON, &e.Seed, &e.NLocations, &e.NTransitions, &e.CompletedAt)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("runledger: lookup %q: %w", outputPath, err)
	}
	return e, true, nil
}
