package stats

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/musiclog/musiclog/internal/domain"
	"github.com/musiclog/musiclog/internal/logger"
	"github.com/musiclog/musiclog/internal/repository"
)

// Service defines the interface for statistics calculations.
type Service interface {
	// CalculateStatistics resolves the strategy for statType and runs it.
	// A nil events slice means "calculate over every stored event"; callers
	// supplying a pre-filtered collection bypass the store entirely. An
	// unknown statistic type returns (nil, nil) - it is not an error.
	CalculateStatistics(ctx context.Context, statType domain.StatisticType, events []domain.ListeningEvent) (*domain.StatisticsResult, error)

	GetMostPlayedArtist(ctx context.Context, events []domain.ListeningEvent) (*domain.StatisticsResult, error)
	GetAverageDuration(ctx context.Context, events []domain.ListeningEvent) (*domain.StatisticsResult, error)
	GetDailyTrends(ctx context.Context, events []domain.ListeningEvent) (*domain.StatisticsResult, error)
	GetPeakHours(ctx context.Context, events []domain.ListeningEvent) (*domain.StatisticsResult, error)

	// GetStatisticsByDate fetches the day's events once and runs all four
	// built-in statistics against that single snapshot.
	GetStatisticsByDate(ctx context.Context, date time.Time) (*domain.DailyStatistics, error)

	// Registry exposes the strategy registry for runtime registration and
	// for the observer's recompute-everything pass.
	Registry() *Registry

	// InvalidateDay drops the cached day statistics for date, if any.
	InvalidateDay(date time.Time)
}

type service struct {
	registry *Registry
	events   repository.Event
	dayCache *lru.Cache[string, *domain.DailyStatistics]
}

// NewService creates a statistics service backed by the given registry and
// event repository.
func NewService(registry *Registry, events repository.Event) (Service, error) {
	cache, err := lru.New[string, *domain.DailyStatistics](DefaultDayCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create day cache: %w", err)
	}
	return &service{
		registry: registry,
		events:   events,
		dayCache: cache,
	}, nil
}

func (s *service) CalculateStatistics(ctx context.Context, statType domain.StatisticType, events []domain.ListeningEvent) (*domain.StatisticsResult, error) {
	strategy, ok := s.registry.Get(statType)
	if !ok {
		return nil, nil
	}

	if events == nil {
		all, err := s.events.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFetchEventsFailed, err)
		}
		events = all
	}

	result := strategy.Calculate(events)
	return &result, nil
}

func (s *service) GetMostPlayedArtist(ctx context.Context, events []domain.ListeningEvent) (*domain.StatisticsResult, error) {
	return s.CalculateStatistics(ctx, domain.StatMostPlayedArtist, events)
}

func (s *service) GetAverageDuration(ctx context.Context, events []domain.ListeningEvent) (*domain.StatisticsResult, error) {
	return s.CalculateStatistics(ctx, domain.StatAverageDuration, events)
}

func (s *service) GetDailyTrends(ctx context.Context, events []domain.ListeningEvent) (*domain.StatisticsResult, error) {
	return s.CalculateStatistics(ctx, domain.StatDailyTrend, events)
}

func (s *service) GetPeakHours(ctx context.Context, events []domain.ListeningEvent) (*domain.StatisticsResult, error) {
	return s.CalculateStatistics(ctx, domain.StatPeakHours, events)
}

func (s *service) GetStatisticsByDate(ctx context.Context, date time.Time) (*domain.DailyStatistics, error) {
	log := logger.FromContext(ctx)
	key := domain.DayOf(date).Format(DateKeyFormat)

	if cached, ok := s.dayCache.Get(key); ok {
		log.Debug("Day statistics served from cache", "date", key)
		return cached, nil
	}

	dayEvents, err := s.events.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchDayFailed, err)
	}
	if dayEvents == nil {
		// Keep the explicit empty collection so strategies take their
		// sentinel path instead of falling back to FindAll.
		dayEvents = []domain.ListeningEvent{}
	}

	daily := &domain.DailyStatistics{}
	if daily.MostPlayedArtist, err = s.GetMostPlayedArtist(ctx, dayEvents); err != nil {
		return nil, err
	}
	if daily.AverageDuration, err = s.GetAverageDuration(ctx, dayEvents); err != nil {
		return nil, err
	}
	if daily.DailyTrend, err = s.GetDailyTrends(ctx, dayEvents); err != nil {
		return nil, err
	}
	if daily.PeakHours, err = s.GetPeakHours(ctx, dayEvents); err != nil {
		return nil, err
	}

	s.dayCache.Add(key, daily)
	return daily, nil
}

func (s *service) Registry() *Registry {
	return s.registry
}

func (s *service) InvalidateDay(date time.Time) {
	s.dayCache.Remove(domain.DayOf(date).Format(DateKeyFormat))
}
