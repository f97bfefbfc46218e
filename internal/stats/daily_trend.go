package stats

import (
	"sort"

	"github.com/musiclog/musiclog/internal/domain"
)

// DailyTrendStrategy groups events by UTC calendar day and summarizes each
// day's activity: event count, total duration, and distinct artist/user
// cardinality.
type DailyTrendStrategy struct{}

// NewDailyTrendStrategy creates the daily-trend strategy.
func NewDailyTrendStrategy() *DailyTrendStrategy {
	return &DailyTrendStrategy{}
}

// Type returns the statistic type key.
func (s *DailyTrendStrategy) Type() domain.StatisticType {
	return domain.StatDailyTrend
}

// Calculate produces the per-day trend list sorted ascending by date.
func (s *DailyTrendStrategy) Calculate(events []domain.ListeningEvent) domain.StatisticsResult {
	if len(events) == 0 {
		return domain.StatisticsResult{
			Type:     s.Type(),
			Value:    domain.TrendValue{},
			Metadata: noEventsMetadata(),
		}
	}

	type dayAccum struct {
		eventCount    int
		totalDuration int
		artists       map[string]struct{}
		users         map[string]struct{}
	}

	days := make(map[string]*dayAccum)
	for _, e := range events {
		key := e.Timestamp.UTC().Format(DateKeyFormat)
		day, ok := days[key]
		if !ok {
			day = &dayAccum{
				artists: make(map[string]struct{}),
				users:   make(map[string]struct{}),
			}
			days[key] = day
		}
		day.eventCount++
		day.totalDuration += e.Duration
		day.artists[e.Artist] = struct{}{}
		day.users[e.UserID] = struct{}{}
	}

	trends := make(domain.TrendValue, 0, len(days))
	for key, day := range days {
		trends = append(trends, domain.DailyTrend{
			Date:          key,
			EventCount:    day.eventCount,
			TotalDuration: day.totalDuration,
			UniqueArtists: len(day.artists),
			UniqueUsers:   len(day.users),
		})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Date < trends[j].Date })

	metadata := map[string]any{
		MetaKeyTotalDays: len(trends),
		MetaKeyDateRange: map[string]any{
			MetaKeyRangeStart: trends[0].Date,
			MetaKeyRangeEnd:   trends[len(trends)-1].Date,
		},
	}
	// Breakdowns cover the whole input, not a single day.
	addOptionalBreakdowns(metadata, events)

	return domain.StatisticsResult{
		Type:     s.Type(),
		Value:    trends,
		Metadata: metadata,
	}
}
