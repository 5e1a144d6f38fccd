package output

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// RunInfo describes the invocation stored alongside its results.
type RunInfo struct {
	Dictionary string
	Input      string
}

// SQLiteSink stores results in a SQLite database. All rows of one run are
// written in a single transaction that is committed by Close or rolled back
// by Abort, so a failed run leaves no trace of itself.
type SQLiteSink struct {
	db    *sql.DB
	tx    *sql.Tx
	stmt  *sql.Stmt
	runID string
}

// NewSQLiteSink opens (or creates) the database at dbPath and registers a
// new run in it.
func NewSQLiteSink(dbPath string, info RunInfo) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteSink{db: db, runID: uuid.NewString()}
	if err := s.init(info); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteSink) init(info RunInfo) error {
	if err := createTables(s.db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO runs (id, dictionary, input, started_at) VALUES (?, ?, ?, ?)`,
		s.runID,
		info.Dictionary,
		info.Input,
		time.Now().Unix(),
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO translations
		(run_id, number_seq, phone_number, result_seq, tokens) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}

	s.tx = tx
	s.stmt = stmt
	return nil
}

// createTables creates the result tables unless they already exist, so
// several runs can share one database file.
func createTables(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id text PRIMARY KEY,
			dictionary text NOT NULL,
			input text NOT NULL,
			started_at integer NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS translations (
			run_id text NOT NULL REFERENCES runs(id),
			number_seq integer NOT NULL,
			phone_number text NOT NULL,
			result_seq integer NOT NULL,
			tokens text NOT NULL,
			PRIMARY KEY (run_id, number_seq, result_seq)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_translations_number ON translations (phone_number)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// RunID returns the id of the run this sink records.
func (s *SQLiteSink) RunID() string { return s.runID }

func (s *SQLiteSink) Write(r Result) error {
	_, err := s.stmt.Exec(
		s.runID,
		r.Line,
		r.Number,
		r.Index,
		strings.Join(r.Tokens, " "),
	)
	if err != nil {
		return fmt.Errorf("failed to insert translation: %w", err)
	}
	return nil
}

// Close commits the run and closes the database.
func (s *SQLiteSink) Close() error {
	var errs []error
	if err := s.stmt.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.tx.Commit(); err != nil {
		errs = append(errs, fmt.Errorf("failed to commit results: %w", err))
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Abort rolls the run back and closes the database.
func (s *SQLiteSink) Abort() error {
	var errs []error
	if err := s.stmt.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.tx.Rollback(); err != nil {
		errs = append(errs, fmt.Errorf("failed to roll back results: %w", err))
	}
	if err := s.db.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
