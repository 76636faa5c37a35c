// Package stats ingests a classified dataset into DuckDB and summarizes it
// with SQL. It backs the stats command only; the quiz engines never touch it.
package stats

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"

	"fsquiz/internal/category"
	"fsquiz/internal/question"
)

// schemaDDL holds the DuckDB schema definition.
//
//go:embed schema.sql
var schemaDDL string

// Open opens a DuckDB database. An empty dsn opens an in-memory database.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	return db, nil
}

// EnsureSchema applies the schema DDL to the provided database connection.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("stats: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}

// Ingest classifies every question and inserts one row per record.
// Unclassified questions land in the "unclassified" group so the summary
// accounts for the whole dataset.
func Ingest(ctx context.Context, db *sql.DB, questions []question.Question, classifier *category.Classifier) error {
	stmt, err := db.PrepareContext(ctx, `INSERT INTO questions
		(question_id, category, kind, time_seconds, option_count, country_count, year_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, q := range questions {
		group := "unclassified"
		if cat := classifier.Classify(q); cat != category.Unclassified {
			group = string(cat)
		}
		kind := "choice"
		if q.FreeResponse() {
			kind = "free"
		}
		var seconds interface{}
		if q.HasTime() {
			seconds = q.TimeSeconds
		}
		if _, err := stmt.ExecContext(ctx, q.ID, group, kind, seconds,
			len(q.Options), len(q.Countries), len(q.Years)); err != nil {
			return fmt.Errorf("insert question %q: %w", q.ID, err)
		}
	}
	return nil
}

// Row summarizes one category group.
type Row struct {
	Category   string
	Count      int
	MedianTime sql.NullFloat64
}

// Summarize reports per-category counts and median answer times.
func Summarize(ctx context.Context, db *sql.DB) ([]Row, error) {
	rows, err := db.QueryContext(ctx, `SELECT category,
			count(*) AS questions,
			median(time_seconds) AS median_time
		FROM questions
		GROUP BY category
		ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("summarize questions: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.Category, &row.Count, &row.MedianTime); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
