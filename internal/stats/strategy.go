package stats

import (
	"github.com/musiclog/musiclog/internal/domain"
)

// Strategy computes one named statistic from a collection of listening
// events. Implementations are pure: no I/O, no mutation of the input slice,
// and deterministic output for a fixed input.
type Strategy interface {
	Type() domain.StatisticType
	Calculate(events []domain.ListeningEvent) domain.StatisticsResult
}

// noEventsMetadata is the sentinel metadata every strategy returns for
// empty input. It carries the message only, no count fields.
func noEventsMetadata() map[string]any {
	return map[string]any{domain.MetadataKeyMessage: domain.MsgNoEvents}
}

// fieldBreakdown counts occurrences of each distinct value yielded by get,
// skipping events where the field is unset. Returns nil when no event
// carries the field, so callers can omit the breakdown entirely.
func fieldBreakdown(events []domain.ListeningEvent, get func(domain.ListeningEvent) string) map[string]int {
	var counts map[string]int
	for _, e := range events {
		v := get(e)
		if v == "" {
			continue
		}
		if counts == nil {
			counts = make(map[string]int)
		}
		counts[v]++
	}
	return counts
}

// addOptionalBreakdowns attaches genre/device/country frequency breakdowns
// to metadata for each field present on at least one event.
func addOptionalBreakdowns(metadata map[string]any, events []domain.ListeningEvent) {
	if genre := fieldBreakdown(events, func(e domain.ListeningEvent) string { return e.Genre }); genre != nil {
		metadata[MetaKeyGenre] = genre
	}
	if device := fieldBreakdown(events, func(e domain.ListeningEvent) string { return e.Device }); device != nil {
		metadata[MetaKeyDevice] = device
	}
	if country := fieldBreakdown(events, func(e domain.ListeningEvent) string { return e.Country }); country != nil {
		metadata[MetaKeyCountry] = country
	}
}
