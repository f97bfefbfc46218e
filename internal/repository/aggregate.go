package repository

import (
	"context"
	"time"

	"github.com/musiclog/musiclog/internal/domain"
)

// Aggregate defines the interface for persisted statistic aggregates.
// Rows are keyed uniquely by (type, date); the observer overwrites an
// existing row on recomputation instead of appending.
type Aggregate interface {
	Create(ctx context.Context, agg *domain.Aggregate) error

	// Update overwrites the value and metadata of an existing row.
	Update(ctx context.Context, agg *domain.Aggregate) error

	// FindByTypeAndDate returns nil (no error) when no row exists.
	FindByTypeAndDate(ctx context.Context, statType domain.StatisticType, date time.Time) (*domain.Aggregate, error)

	FindByType(ctx context.Context, statType domain.StatisticType) ([]domain.Aggregate, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.Aggregate, error)
	FindLatestByType(ctx context.Context, statType domain.StatisticType) (*domain.Aggregate, error)
}
