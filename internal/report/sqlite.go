// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		articles_fetched INTEGER NOT NULL,
		articles_kept INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS report_rows (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		position INTEGER NOT NULL,
		pubmed_id TEXT NOT NULL,
		title TEXT,
		publication_date TEXT,
		non_academic_authors TEXT,
		company_affiliations TEXT,
		corresponding_email TEXT,
		PRIMARY KEY (run_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_report_rows_pubmed_id ON report_rows(pubmed_id)`,
}

func openReportDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return db, nil
}

// WriteSQLite appends f to the SQLite database at path as a new run and
// returns the run ID. Multi-valued fields are stored flattened with the CSV
// separators.
func WriteSQLite(ctx context.Context, path string, f File) (int64, error) {
	db, err := openReportDB(path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (query, articles_fetched, articles_kept, created_at) VALUES (?, ?, ?, ?)`,
		f.Query, f.Summary.ArticlesFetched, f.Summary.ArticlesKept,
		f.Summary.Timestamp.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO report_rows
		(run_id, position, pubmed_id, title, publication_date,
		 non_academic_authors, company_affiliations, corresponding_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing row insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range f.Rows {
		rec := Record(row)
		if _, err := stmt.ExecContext(ctx, runID, i,
			rec[0], rec[1], rec[2], rec[3], rec[4], rec[5]); err != nil {
			return 0, fmt.Errorf("inserting row %s: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing report: %w", err)
	}
	return runID, nil
}

// ReadSQLite loads the run with the given ID from the database at path.
func ReadSQLite(ctx context.Context, path string, runID int64) (*File, error) {
	db, err := openReportDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var f File
	var created string
	err = db.QueryRowContext(ctx,
		`SELECT query, articles_fetched, articles_kept, created_at FROM runs WHERE id = ?`, runID,
	).Scan(&f.Query, &f.Summary.ArticlesFetched, &f.Summary.ArticlesKept, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("reading run %d: %w", runID, err)
	}
	if t, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
		f.Summary.Timestamp = t
	}

	rows, err := db.QueryContext(ctx, `SELECT pubmed_id, title, publication_date,
		non_academic_authors, company_affiliations, corresponding_email
		FROM report_rows WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rec := make([]string, len(Columns))
		if err := rows.Scan(&rec[0], &rec[1], &rec[2], &rec[3], &rec[4], &rec[5]); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		f.Rows = append(f.Rows, row)
	}
	return &f, rows.Err()
}
