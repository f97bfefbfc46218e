package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/musiclog/musiclog/internal/domain"
	"github.com/musiclog/musiclog/internal/repository"
)

type eventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new PostgreSQL listening-event repository
func NewEventRepository(db *pgxpool.Pool) repository.Event {
	return &eventRepository{db: db}
}

const eventColumns = `id, user_id, track_id, artist, genre, country, device, duration, timestamp, created_at, updated_at`

// Create persists a listening event and fills in the store-owned fields.
func (r *eventRepository) Create(ctx context.Context, event *domain.ListeningEvent) error {
	query := `
		INSERT INTO listening_events (user_id, track_id, artist, genre, country, device, duration, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		event.UserID,
		event.TrackID,
		event.Artist,
		nullable(event.Genre),
		nullable(event.Country),
		nullable(event.Device),
		event.Duration,
		event.Timestamp,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

// FindByID returns nil (no error) when no event exists with the given id.
func (r *eventRepository) FindByID(ctx context.Context, id int64) (*domain.ListeningEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM listening_events WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	event, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]domain.ListeningEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM listening_events ORDER BY timestamp ASC, id ASC`
	return r.queryEvents(ctx, query)
}

func (r *eventRepository) FindByUserID(ctx context.Context, userID string) ([]domain.ListeningEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM listening_events WHERE user_id = $1 ORDER BY timestamp ASC, id ASC`
	return r.queryEvents(ctx, query, userID)
}

func (r *eventRepository) FindByArtist(ctx context.Context, artist string) ([]domain.ListeningEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM listening_events WHERE artist = $1 ORDER BY timestamp ASC, id ASC`
	return r.queryEvents(ctx, query, artist)
}

func (r *eventRepository) FindByGenre(ctx context.Context, genre string) ([]domain.ListeningEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM listening_events WHERE genre = $1 ORDER BY timestamp ASC, id ASC`
	return r.queryEvents(ctx, query, genre)
}

func (r *eventRepository) FindByCountry(ctx context.Context, country string) ([]domain.ListeningEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM listening_events WHERE country = $1 ORDER BY timestamp ASC, id ASC`
	return r.queryEvents(ctx, query, country)
}

func (r *eventRepository) FindByDevice(ctx context.Context, device string) ([]domain.ListeningEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM listening_events WHERE device = $1 ORDER BY timestamp ASC, id ASC`
	return r.queryEvents(ctx, query, device)
}

// FindByDate returns every event within the UTC calendar day containing date.
func (r *eventRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.ListeningEvent, error) {
	start := domain.DayOf(date)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return r.FindByDateRange(ctx, start, end)
}

// FindByDateRange returns events with start <= timestamp <= end, inclusive.
func (r *eventRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.ListeningEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM listening_events WHERE timestamp BETWEEN $1 AND $2 ORDER BY timestamp ASC, id ASC`
	return r.queryEvents(ctx, query, start, end)
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]domain.ListeningEvent, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// scanEvents scans rows into ListeningEvent structs
func scanEvents(rows pgx.Rows) ([]domain.ListeningEvent, error) {
	var events []domain.ListeningEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func scanEvent(row pgx.Row) (*domain.ListeningEvent, error) {
	var event domain.ListeningEvent
	var genre, country, device *string

	err := row.Scan(
		&event.ID,
		&event.UserID,
		&event.TrackID,
		&event.Artist,
		&genre,
		&country,
		&device,
		&event.Duration,
		&event.Timestamp,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if genre != nil {
		event.Genre = *genre
	}
	if country != nil {
		event.Country = *country
	}
	if device != nil {
		event.Device = *device
	}
	return &event, nil
}

// nullable maps an unset optional field to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
