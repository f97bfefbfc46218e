package stats

import (
	"math"

	"github.com/musiclog/musiclog/internal/domain"
)

// AverageDurationStrategy computes the arithmetic mean listening duration,
// rounded to the nearest whole second with .5 rounding away from zero.
type AverageDurationStrategy struct{}

// NewAverageDurationStrategy creates the average-duration strategy.
func NewAverageDurationStrategy() *AverageDurationStrategy {
	return &AverageDurationStrategy{}
}

// Type returns the statistic type key.
func (s *AverageDurationStrategy) Type() domain.StatisticType {
	return domain.StatAverageDuration
}

// Calculate averages the duration across events. Empty input yields the
// sentinel value 0 with no total/count metadata.
func (s *AverageDurationStrategy) Calculate(events []domain.ListeningEvent) domain.StatisticsResult {
	if len(events) == 0 {
		return domain.StatisticsResult{
			Type:     s.Type(),
			Value:    domain.DurationValue(0),
			Metadata: noEventsMetadata(),
		}
	}

	total := 0
	for _, e := range events {
		total += e.Duration
	}
	average := int(math.Round(float64(total) / float64(len(events))))

	metadata := map[string]any{
		MetaKeyTotalDuration: total,
		MetaKeyEventCount:    len(events),
		MetaKeyUnit:          DurationUnit,
	}
	addOptionalBreakdowns(metadata, events)

	return domain.StatisticsResult{
		Type:     s.Type(),
		Value:    domain.DurationValue(average),
		Metadata: metadata,
	}
}
