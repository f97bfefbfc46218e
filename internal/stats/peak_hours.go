package stats

import (
	"math"
	"sort"

	"github.com/musiclog/musiclog/internal/domain"
)

// PeakHoursStrategy buckets events by UTC hour of day regardless of
// calendar date. All 24 buckets are always materialized; the peak view is
// the top buckets by event count.
type PeakHoursStrategy struct{}

// NewPeakHoursStrategy creates the peak-hours strategy.
func NewPeakHoursStrategy() *PeakHoursStrategy {
	return &PeakHoursStrategy{}
}

// Type returns the statistic type key.
func (s *PeakHoursStrategy) Type() domain.StatisticType {
	return domain.StatPeakHours
}

// Calculate produces the hourly distribution. Empty input yields the
// distinct empty-hours variant, not the usual two-view object.
func (s *PeakHoursStrategy) Calculate(events []domain.ListeningEvent) domain.StatisticsResult {
	if len(events) == 0 {
		return domain.StatisticsResult{
			Type:     s.Type(),
			Value:    domain.EmptyHoursValue{},
			Metadata: noEventsMetadata(),
		}
	}

	type hourAccum struct {
		eventCount    int
		totalDuration int
		users         map[string]struct{}
		artists       map[string]struct{}
	}

	var hours [HoursPerDay]hourAccum
	for i := range hours {
		hours[i].users = make(map[string]struct{})
		hours[i].artists = make(map[string]struct{})
	}

	for _, e := range events {
		h := e.Timestamp.UTC().Hour()
		hours[h].eventCount++
		hours[h].totalDuration += e.Duration
		hours[h].users[e.UserID] = struct{}{}
		hours[h].artists[e.Artist] = struct{}{}
	}

	allHours := make([]domain.HourBucket, HoursPerDay)
	for h, accum := range hours {
		average := 0
		if accum.eventCount > 0 {
			average = int(math.Round(float64(accum.totalDuration) / float64(accum.eventCount)))
		}
		allHours[h] = domain.HourBucket{
			Hour:            h,
			EventCount:      accum.eventCount,
			TotalDuration:   accum.totalDuration,
			AverageDuration: average,
			UniqueUsers:     len(accum.users),
			UniqueArtists:   len(accum.artists),
		}
	}

	// Rank non-empty buckets by count; stable sort keeps the ascending-hour
	// order among ties.
	ranked := make([]domain.HourBucket, 0, HoursPerDay)
	for _, bucket := range allHours {
		if bucket.EventCount > 0 {
			ranked = append(ranked, bucket)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].EventCount > ranked[j].EventCount })
	if len(ranked) > TopPeakHours {
		ranked = ranked[:TopPeakHours]
	}

	metadata := map[string]any{
		MetaKeyTotalEvents:        len(events),
		MetaKeyPeakHour:           ranked[0].Hour,
		MetaKeyPeakHourEventCount: ranked[0].EventCount,
	}

	return domain.StatisticsResult{
		Type: s.Type(),
		Value: domain.HourlyValue{
			AllHours:  allHours,
			PeakHours: ranked,
		},
		Metadata: metadata,
	}
}
