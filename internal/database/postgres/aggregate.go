package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/musiclog/musiclog/internal/domain"
	"github.com/musiclog/musiclog/internal/repository"
)

type aggregateRepository struct {
	db *pgxpool.Pool
}

// NewAggregateRepository creates a new PostgreSQL aggregate repository.
// The statistics table carries a unique index on (type, date), so a racing
// duplicate create surfaces as a constraint violation instead of a second row.
func NewAggregateRepository(db *pgxpool.Pool) repository.Aggregate {
	return &aggregateRepository{db: db}
}

const aggregateColumns = `id, type, date, value, metadata`

func (r *aggregateRepository) Create(ctx context.Context, agg *domain.Aggregate) error {
	query := `
		INSERT INTO statistics (type, date, value, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		agg.Type,
		agg.Date,
		agg.Value,
		agg.Metadata,
	).Scan(&agg.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
		return fmt.Errorf("%w: %s %s", domain.ErrAggregateExists, agg.Type, agg.Date.Format(time.DateOnly))
	}
	return err
}

func (r *aggregateRepository) Update(ctx context.Context, agg *domain.Aggregate) error {
	query := `
		UPDATE statistics
		SET value = $1, metadata = $2, updated_at = NOW()
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, agg.Value, agg.Metadata, agg.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAggregateNotFound
	}
	return nil
}

// FindByTypeAndDate returns nil (no error) when no aggregate exists for the
// pair; absence is a normal outcome for a day's first computation.
func (r *aggregateRepository) FindByTypeAndDate(ctx context.Context, statType domain.StatisticType, date time.Time) (*domain.Aggregate, error) {
	query := `SELECT ` + aggregateColumns + ` FROM statistics WHERE type = $1 AND date = $2`

	agg, err := scanAggregate(r.db.QueryRow(ctx, query, statType, domain.DayOf(date)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return agg, nil
}

func (r *aggregateRepository) FindByType(ctx context.Context, statType domain.StatisticType) ([]domain.Aggregate, error) {
	query := `SELECT ` + aggregateColumns + ` FROM statistics WHERE type = $1 ORDER BY date ASC`

	rows, err := r.db.Query(ctx, query, statType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAggregates(rows)
}

func (r *aggregateRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.Aggregate, error) {
	query := `SELECT ` + aggregateColumns + ` FROM statistics WHERE date BETWEEN $1 AND $2 ORDER BY date ASC, type ASC`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAggregates(rows)
}

func (r *aggregateRepository) FindLatestByType(ctx context.Context, statType domain.StatisticType) (*domain.Aggregate, error) {
	query := `SELECT ` + aggregateColumns + ` FROM statistics WHERE type = $1 ORDER BY date DESC LIMIT 1`

	agg, err := scanAggregate(r.db.QueryRow(ctx, query, statType))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return agg, nil
}

func scanAggregates(rows pgx.Rows) ([]domain.Aggregate, error) {
	var aggregates []domain.Aggregate
	for rows.Next() {
		agg, err := scanAggregate(rows)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, *agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return aggregates, nil
}

func scanAggregate(row pgx.Row) (*domain.Aggregate, error) {
	var agg domain.Aggregate
	err := row.Scan(
		&agg.ID,
		&agg.Type,
		&agg.Date,
		&agg.Value,
		&agg.Metadata,
	)
	if err != nil {
		return nil, err
	}
	agg.Date = agg.Date.UTC()
	return &agg, nil
}
