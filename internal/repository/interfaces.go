package repository

import (
	"context"
	"time"

	"github.com/LinFrancis/aucca-app/internal/domain"
)

type QueryLogRepo interface {
	Create(ctx context.Context, q *domain.QueryLog) error
	GetByID(ctx context.Context, id string) (*domain.QueryLog, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.QueryLog, error)
	CountByKind(ctx context.Context) ([]domain.KindCount, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

// QueryGapRepo keeps one counter per unanswered normalized question.
type QueryGapRepo interface {
	Record(ctx context.Context, normalized, query string, at time.Time) error
	ListTop(ctx context.Context, limit int) ([]domain.QueryGap, error)
	Delete(ctx context.Context, normalized string) error
}
