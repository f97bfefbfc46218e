package handler

import (
	"context"
	"time"

	"github.com/musiclog/musiclog/internal/domain"
)

// mockEventRepository implements repository.Event for handler tests
type mockEventRepository struct {
	events []domain.ListeningEvent

	findAllError  error
	findByIDError error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.ListeningEvent) error {
	event.ID = int64(len(m.events) + 1)
	m.events = append(m.events, *event)
	return nil
}

func (m *mockEventRepository) FindByID(ctx context.Context, id int64) (*domain.ListeningEvent, error) {
	if m.findByIDError != nil {
		return nil, m.findByIDError
	}
	for _, e := range m.events {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockEventRepository) FindAll(ctx context.Context) ([]domain.ListeningEvent, error) {
	if m.findAllError != nil {
		return nil, m.findAllError
	}
	return append([]domain.ListeningEvent(nil), m.events...), nil
}

func (m *mockEventRepository) FindByUserID(ctx context.Context, userID string) ([]domain.ListeningEvent, error) {
	var filtered []domain.ListeningEvent
	for _, e := range m.events {
		if e.UserID == userID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (m *mockEventRepository) FindByArtist(ctx context.Context, artist string) ([]domain.ListeningEvent, error) {
	var filtered []domain.ListeningEvent
	for _, e := range m.events {
		if e.Artist == artist {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (m *mockEventRepository) FindByGenre(ctx context.Context, genre string) ([]domain.ListeningEvent, error) {
	return nil, nil
}

func (m *mockEventRepository) FindByCountry(ctx context.Context, country string) ([]domain.ListeningEvent, error) {
	return nil, nil
}

func (m *mockEventRepository) FindByDevice(ctx context.Context, device string) ([]domain.ListeningEvent, error) {
	return nil, nil
}

func (m *mockEventRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.ListeningEvent, error) {
	day := domain.DayOf(date)
	var filtered []domain.ListeningEvent
	for _, e := range m.events {
		if e.Day().Equal(day) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (m *mockEventRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.ListeningEvent, error) {
	var filtered []domain.ListeningEvent
	for _, e := range m.events {
		if !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// noopNotifier drops notifications; handler tests exercise the HTTP layer
type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, event domain.ListeningEvent) {}
