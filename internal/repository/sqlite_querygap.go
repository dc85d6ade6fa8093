package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/LinFrancis/aucca-app/internal/db"
	"github.com/LinFrancis/aucca-app/internal/domain"
)

// SQLiteQueryGapRepo implements QueryGapRepo using a SQLite database.
type SQLiteQueryGapRepo struct {
	db db.DBTX
}

// NewSQLiteQueryGapRepo creates a new SQLiteQueryGapRepo.
func NewSQLiteQueryGapRepo(conn db.DBTX) *SQLiteQueryGapRepo {
	return &SQLiteQueryGapRepo{db: conn}
}

// Record counts one more unanswered occurrence of normalized. The first
// raw query seen is kept as the sample.
func (r *SQLiteQueryGapRepo) Record(ctx context.Context, normalized, query string, at time.Time) error {
	if strings.TrimSpace(normalized) == "" {
		return fmt.Errorf("query gap: normalized text is required")
	}
	stmt := `INSERT INTO query_gaps (normalized, sample_query, count, first_seen, last_seen)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(normalized) DO UPDATE SET
			count = count + 1,
			last_seen = MAX(last_seen, excluded.last_seen)`
	ts := formatTime(at)
	if _, err := r.db.ExecContext(ctx, stmt, normalized, query, ts, ts); err != nil {
		return fmt.Errorf("recording query gap: %w", err)
	}
	return nil
}

// ListTop returns the most frequent gaps, most recent first among equals.
func (r *SQLiteQueryGapRepo) ListTop(ctx context.Context, limit int) ([]domain.QueryGap, error) {
	query := `SELECT normalized, sample_query, count, first_seen, last_seen
		FROM query_gaps
		ORDER BY count DESC, last_seen DESC, normalized
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, normalizeLimit(limit, defaultListLimit))
	if err != nil {
		return nil, fmt.Errorf("listing query gaps: %w", err)
	}
	defer rows.Close()

	var out []domain.QueryGap
	for rows.Next() {
		var g domain.QueryGap
		var firstStr, lastStr string
		if err := rows.Scan(&g.Normalized, &g.SampleQuery, &g.Count, &firstStr, &lastStr); err != nil {
			return nil, fmt.Errorf("scanning query gap: %w", err)
		}
		if g.FirstSeen, err = parseTime("first_seen", firstStr); err != nil {
			return nil, err
		}
		if g.LastSeen, err = parseTime("last_seen", lastStr); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating query gaps: %w", err)
	}
	return out, nil
}

// Delete drops a gap once the knowledge base covers it.
func (r *SQLiteQueryGapRepo) Delete(ctx context.Context, normalized string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM query_gaps WHERE normalized = ?`, normalized)
	if err != nil {
		return fmt.Errorf("deleting query gap: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted query gap: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("query gap %q: %w", normalized, ErrNotFound)
	}
	return nil
}
