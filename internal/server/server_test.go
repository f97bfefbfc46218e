package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/musiclog/musiclog/internal/domain"
	"github.com/musiclog/musiclog/internal/ingest"
	"github.com/musiclog/musiclog/internal/repository"
	"github.com/musiclog/musiclog/internal/stats"
)

type stubPool struct{}

func (stubPool) Ping(ctx context.Context) error { return nil }
func (stubPool) Close()                         {}

type stubEventRepository struct{}

func (stubEventRepository) Create(ctx context.Context, event *domain.ListeningEvent) error {
	return nil
}
func (stubEventRepository) FindByID(ctx context.Context, id int64) (*domain.ListeningEvent, error) {
	return nil, nil
}
func (stubEventRepository) FindAll(ctx context.Context) ([]domain.ListeningEvent, error) {
	return nil, nil
}
func (stubEventRepository) FindByUserID(ctx context.Context, userID string) ([]domain.ListeningEvent, error) {
	return nil, nil
}
func (stubEventRepository) FindByArtist(ctx context.Context, artist string) ([]domain.ListeningEvent, error) {
	return nil, nil
}
func (stubEventRepository) FindByGenre(ctx context.Context, genre string) ([]domain.ListeningEvent, error) {
	return nil, nil
}
func (stubEventRepository) FindByCountry(ctx context.Context, country string) ([]domain.ListeningEvent, error) {
	return nil, nil
}
func (stubEventRepository) FindByDevice(ctx context.Context, device string) ([]domain.ListeningEvent, error) {
	return nil, nil
}
func (stubEventRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.ListeningEvent, error) {
	return nil, nil
}
func (stubEventRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]domain.ListeningEvent, error) {
	return nil, nil
}

var _ repository.Event = stubEventRepository{}

type stubNotifier struct{}

func (stubNotifier) Notify(ctx context.Context, event domain.ListeningEvent) {}

// newTestServer assembles the real router with the full middleware stack.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	repo := stubEventRepository{}
	statsService, err := stats.NewService(stats.NewRegistry(), repo)
	if err != nil {
		t.Fatalf("Failed to create stats service: %v", err)
	}
	ingestService := ingest.NewService(repo, stubNotifier{})

	return NewServer(8080, "test-api-key", nil, stubPool{}, ingestService, statsService, repo)
}

func TestNewServer_RoutesThroughMiddlewareStack(t *testing.T) {
	srv := newTestServer(t)
	router := srv.httpServer.Handler

	t.Run("public health endpoint", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/healthz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get(HeaderContentType); got != HeaderValueNoSniff {
			t.Errorf("Expected security headers on response, got %q", got)
		}
	})

	t.Run("api route requires key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/events", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401 without API key, got %d", rec.Code)
		}
	})

	t.Run("api route with key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/statistics/all", nil)
		req.Header.Set(HeaderAPIKey, "test-api-key")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200 with API key, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("metrics endpoint exposed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/metrics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
	})
}
