package domain

import (
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatisticType identifies a calculation strategy.
type StatisticType string

// Built-in statistic types
const (
	StatMostPlayedArtist StatisticType = "most_played_artist"
	StatAverageDuration  StatisticType = "average_duration"
	StatDailyTrend       StatisticType = "daily_trend"
	StatPeakHours        StatisticType = "peak_hours"
)

var titleCaser = cases.Title(language.English)

// DisplayName renders a statistic type key as a human-readable label,
// e.g. "most_played_artist" -> "Most Played Artist".
func (t StatisticType) DisplayName() string {
	return titleCaser.String(strings.ReplaceAll(string(t), "_", " "))
}

// StatisticsResult is the uniform output of every calculation strategy.
// Value is a tagged union: exactly one variant per statistic type plus the
// explicit no-data sentinels. Results are built fresh per calculation and are
// never persisted directly; the observer serializes them into an Aggregate.
type StatisticsResult struct {
	Type     StatisticType  `json:"type"`
	Value    StatisticValue `json:"value"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// StatisticValue is the sealed set of value shapes a strategy can produce.
type StatisticValue interface {
	statisticValue()
}

// ArtistValue is the most-played artist name.
type ArtistValue string

// DurationValue is a duration statistic in whole seconds.
type DurationValue int

// DailyTrend is one calendar day's activity summary.
type DailyTrend struct {
	Date          string `json:"date"` // YYYY-MM-DD, UTC
	EventCount    int    `json:"eventCount"`
	TotalDuration int    `json:"totalDuration"`
	UniqueArtists int    `json:"uniqueArtists"`
	UniqueUsers   int    `json:"uniqueUsers"`
}

// TrendValue is the per-day trend list, sorted ascending by date.
type TrendValue []DailyTrend

// HourBucket summarizes activity for one hour of day (0-23, UTC).
type HourBucket struct {
	Hour            int `json:"hour"`
	EventCount      int `json:"eventCount"`
	TotalDuration   int `json:"totalDuration"`
	AverageDuration int `json:"averageDuration"`
	UniqueUsers     int `json:"uniqueUsers"`
	UniqueArtists   int `json:"uniqueArtists"`
}

// HourlyValue is the peak-hours result: all 24 buckets ascending by hour,
// and the top 3 buckets by event count.
type HourlyValue struct {
	AllHours  []HourBucket `json:"allHours"`
	PeakHours []HourBucket `json:"peakHours"`
}

// NoValue is the explicit no-data sentinel; it serializes as JSON null.
type NoValue struct{}

// EmptyHoursValue is the peak-hours no-data variant. The legacy service
// returned an empty list here instead of the usual object shape; the distinct
// variant keeps that wire behavior while making the shape switch explicit.
type EmptyHoursValue struct{}

func (ArtistValue) statisticValue()     {}
func (DurationValue) statisticValue()   {}
func (TrendValue) statisticValue()      {}
func (HourlyValue) statisticValue()     {}
func (NoValue) statisticValue()         {}
func (EmptyHoursValue) statisticValue() {}

// MarshalJSON serializes the sentinel as null.
func (NoValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON serializes the empty peak-hours variant as an empty list.
func (EmptyHoursValue) MarshalJSON() ([]byte, error) { return []byte("[]"), nil }

// Aggregate is the persisted output of a strategy for one (type, date) pair.
// At most one row exists per pair; recomputation overwrites, never appends.
type Aggregate struct {
	ID       int64           `json:"id"`
	Type     StatisticType   `json:"type"`
	Date     time.Time       `json:"date"` // midnight UTC
	Value    json.RawMessage `json:"value"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// DailyStatistics bundles all four built-in results computed over one
// consistent snapshot of a single day's events.
type DailyStatistics struct {
	MostPlayedArtist *StatisticsResult `json:"mostPlayedArtist"`
	AverageDuration  *StatisticsResult `json:"averageDuration"`
	DailyTrend       *StatisticsResult `json:"dailyTrend"`
	PeakHours        *StatisticsResult `json:"peakHours"`
}
