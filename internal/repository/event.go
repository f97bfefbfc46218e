package repository

import (
	"context"
	"time"

	"github.com/musiclog/musiclog/internal/domain"
)

// Event defines the interface for listening-event persistence.
// The statistics pipeline only ever reads events; Create is the single
// write, used by the ingestion path.
type Event interface {
	Create(ctx context.Context, event *domain.ListeningEvent) error
	FindByID(ctx context.Context, id int64) (*domain.ListeningEvent, error)
	FindAll(ctx context.Context) ([]domain.ListeningEvent, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.ListeningEvent, error)
	FindByArtist(ctx context.Context, artist string) ([]domain.ListeningEvent, error)
	FindByGenre(ctx context.Context, genre string) ([]domain.ListeningEvent, error)
	FindByCountry(ctx context.Context, country string) ([]domain.ListeningEvent, error)
	FindByDevice(ctx context.Context, device string) ([]domain.ListeningEvent, error)

	// FindByDate returns all events whose timestamp falls within the UTC
	// calendar day containing date.
	FindByDate(ctx context.Context, date time.Time) ([]domain.ListeningEvent, error)

	// FindByDateRange returns all events with start <= timestamp <= end.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.ListeningEvent, error)
}
