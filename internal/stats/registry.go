package stats

import (
	"sync"

	"github.com/musiclog/musiclog/internal/domain"
)

// Registry maps statistic type keys to strategy instances. It is
// constructed once at process start and passed by injection; there is no
// package-level registry. Registration is allowed at runtime, so the set of
// known statistics can grow without touching the observer or the service.
type Registry struct {
	mu         sync.RWMutex
	strategies map[domain.StatisticType]Strategy
	order      []domain.StatisticType
}

// NewRegistry creates a registry pre-populated with the four built-in
// strategies.
func NewRegistry() *Registry {
	r := &Registry{
		strategies: make(map[domain.StatisticType]Strategy),
	}
	r.Register(domain.StatMostPlayedArtist, NewMostPlayedArtistStrategy())
	r.Register(domain.StatAverageDuration, NewAverageDurationStrategy())
	r.Register(domain.StatDailyTrend, NewDailyTrendStrategy())
	r.Register(domain.StatPeakHours, NewPeakHoursStrategy())
	return r
}

// Get returns the strategy registered for a type. An unknown type is a
// normal outcome, reported through the second return value.
func (r *Registry) Get(statType domain.StatisticType) (Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[statType]
	return s, ok
}

// All returns a snapshot of every registered strategy in registration order.
func (r *Registry) All() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Strategy, 0, len(r.order))
	for _, t := range r.order {
		all = append(all, r.strategies[t])
	}
	return all
}

// Register inserts or replaces the strategy for a type.
func (r *Registry) Register(statType domain.StatisticType, strategy Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.strategies[statType]; !exists {
		r.order = append(r.order, statType)
	}
	r.strategies[statType] = strategy
}
