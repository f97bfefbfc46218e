package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/musiclog/musiclog/internal/database/postgres"
	"github.com/musiclog/musiclog/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Event     repository.Event
	Aggregate repository.Aggregate
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Event:     postgres.NewEventRepository(dbPool),
		Aggregate: postgres.NewAggregateRepository(dbPool),
	}
}
