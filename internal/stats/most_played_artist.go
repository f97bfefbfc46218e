package stats

import (
	"fmt"

	"github.com/musiclog/musiclog/internal/domain"
)

// MostPlayedArtistStrategy finds the artist with the highest play count.
// On a tie, the artist that reached the maximum count first in input order
// wins; later artists matching the same count do not displace it.
type MostPlayedArtistStrategy struct{}

// NewMostPlayedArtistStrategy creates the most-played-artist strategy.
func NewMostPlayedArtistStrategy() *MostPlayedArtistStrategy {
	return &MostPlayedArtistStrategy{}
}

// Type returns the statistic type key.
func (s *MostPlayedArtistStrategy) Type() domain.StatisticType {
	return domain.StatMostPlayedArtist
}

// Calculate counts plays per artist across events.
func (s *MostPlayedArtistStrategy) Calculate(events []domain.ListeningEvent) domain.StatisticsResult {
	if len(events) == 0 {
		return domain.StatisticsResult{
			Type:     s.Type(),
			Value:    domain.NoValue{},
			Metadata: noEventsMetadata(),
		}
	}

	counts := make(map[string]int)
	var winner string
	var maxCount int
	for _, e := range events {
		counts[e.Artist]++
		if counts[e.Artist] > maxCount {
			maxCount = counts[e.Artist]
			winner = e.Artist
		}
	}

	metadata := map[string]any{
		MetaKeyMaxCount:    maxCount,
		MetaKeyTotalEvents: len(events),
		MetaKeyPercentage:  fmt.Sprintf("%.2f", float64(maxCount)/float64(len(events))*100),
	}
	addOptionalBreakdowns(metadata, events)

	return domain.StatisticsResult{
		Type:     s.Type(),
		Value:    domain.ArtistValue(winner),
		Metadata: metadata,
	}
}
