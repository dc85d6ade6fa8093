package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillQueryGaps(db); err != nil {
		return fmt.Errorf("backfilling query gaps: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS query_log (
		id           TEXT PRIMARY KEY,
		query        TEXT NOT NULL,
		normalized   TEXT NOT NULL,
		kind         TEXT NOT NULL
		             CHECK(kind IN ('single_plant','multiple_plants','concept_answer','fuzzy_suggestions','not_found')),
		answer_key   TEXT NOT NULL DEFAULT '',
		did_you_mean INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_query_log_created ON query_log(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_query_log_kind ON query_log(kind)`,

	// Where the question was asked: cli, shell or http
	`ALTER TABLE query_log ADD COLUMN source TEXT NOT NULL DEFAULT 'cli'`,

	`CREATE TABLE IF NOT EXISTS query_gaps (
		normalized   TEXT PRIMARY KEY,
		sample_query TEXT NOT NULL,
		count        INTEGER NOT NULL DEFAULT 0 CHECK(count >= 0),
		first_seen   TEXT NOT NULL,
		last_seen    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_query_gaps_count ON query_gaps(count DESC)`,
}

// migrateBackfillQueryGaps builds gap rows for unanswered questions logged
// before the query_gaps table existed. Only normalized forms without a gap
// row are considered, so running it again adds nothing.
func migrateBackfillQueryGaps(db *sql.DB) error {
	ctx := context.Background()

	var missing int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM query_log
		WHERE kind = 'not_found'
		  AND normalized != ''
		  AND normalized NOT IN (SELECT normalized FROM query_gaps)`).Scan(&missing)
	if err != nil {
		return fmt.Errorf("counting unanswered queries without gaps: %w", err)
	}
	if missing == 0 {
		return nil
	}

	_, err = db.ExecContext(ctx, `INSERT INTO query_gaps (normalized, sample_query, count, first_seen, last_seen)
		SELECT normalized, MIN(query), COUNT(*), MIN(created_at), MAX(created_at)
		FROM query_log
		WHERE kind = 'not_found'
		  AND normalized != ''
		  AND normalized NOT IN (SELECT normalized FROM query_gaps)
		GROUP BY normalized`)
	if err != nil {
		return fmt.Errorf("inserting backfilled gaps: %w", err)
	}
	return nil
}
