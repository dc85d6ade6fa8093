package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/LinFrancis/aucca-app/internal/db"
	"github.com/LinFrancis/aucca-app/internal/domain"
)

const defaultListLimit = 20

// SQLiteQueryLogRepo implements QueryLogRepo using a SQLite database.
type SQLiteQueryLogRepo struct {
	db db.DBTX
}

// NewSQLiteQueryLogRepo creates a new SQLiteQueryLogRepo.
func NewSQLiteQueryLogRepo(conn db.DBTX) *SQLiteQueryLogRepo {
	return &SQLiteQueryLogRepo{db: conn}
}

func (r *SQLiteQueryLogRepo) Create(ctx context.Context, q *domain.QueryLog) error {
	if err := q.Validate(); err != nil {
		return err
	}
	source := q.Source
	if source == "" {
		source = domain.SourceCLI
	}
	query := `INSERT INTO query_log (id, query, normalized, kind, answer_key, did_you_mean, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.Query,
		q.Normalized,
		string(q.Kind),
		q.AnswerKey,
		boolToInt(q.DidYouMean),
		string(source),
		formatTime(q.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting query log: %w", err)
	}
	return nil
}

func (r *SQLiteQueryLogRepo) GetByID(ctx context.Context, id string) (*domain.QueryLog, error) {
	query := `SELECT id, query, normalized, kind, answer_key, did_you_mean, source, created_at
		FROM query_log WHERE id = ?`
	q, err := r.scanQueryLog(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("query log: %w", ErrNotFound)
	}
	return q, err
}

// ListRecent returns the newest entries first. Entries logged within the same
// second keep their insertion order reversed.
func (r *SQLiteQueryLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.QueryLog, error) {
	query := `SELECT id, query, normalized, kind, answer_key, did_you_mean, source, created_at
		FROM query_log
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, normalizeLimit(limit, defaultListLimit))
	if err != nil {
		return nil, fmt.Errorf("listing recent queries: %w", err)
	}
	defer rows.Close()

	var out []*domain.QueryLog
	for rows.Next() {
		q, err := r.scanQueryLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating query log: %w", err)
	}
	return out, nil
}

func (r *SQLiteQueryLogRepo) CountByKind(ctx context.Context) ([]domain.KindCount, error) {
	query := `SELECT kind, COUNT(*) FROM query_log GROUP BY kind ORDER BY COUNT(*) DESC, kind`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting queries by kind: %w", err)
	}
	defer rows.Close()

	var out []domain.KindCount
	for rows.Next() {
		var kind string
		var c domain.KindCount
		if err := rows.Scan(&kind, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning kind count: %w", err)
		}
		c.Kind = domain.ResultKind(kind)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating kind counts: %w", err)
	}
	return out, nil
}

// DeleteBefore removes entries logged strictly before the given time and
// reports how many were removed.
func (r *SQLiteQueryLogRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM query_log WHERE created_at < ?`, formatTime(before))
	if err != nil {
		return 0, fmt.Errorf("pruning query log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned rows: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteQueryLogRepo) scanQueryLog(row rowScanner) (*domain.QueryLog, error) {
	var q domain.QueryLog
	var kind, source, createdAtStr string
	var didYouMean int

	err := row.Scan(&q.ID, &q.Query, &q.Normalized, &kind, &q.AnswerKey, &didYouMean, &source, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning query log: %w", err)
	}

	q.Kind, err = domain.ParseResultKind(kind)
	if err != nil {
		return nil, err
	}
	q.DidYouMean = intToBool(didYouMean)
	q.Source = domain.QuerySource(source)
	q.CreatedAt, err = parseTime("created_at", createdAtStr)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
