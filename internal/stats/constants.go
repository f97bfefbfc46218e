package stats

// ObserverName identifies the statistics observer on the notification bus.
const ObserverName = "statistics-observer"

// DateKeyFormat is the calendar-day key format used for trend buckets,
// aggregate lookups and the day-statistics cache.
const DateKeyFormat = "2006-01-02"

// DefaultDayCacheSize bounds the day-statistics LRU cache.
const DefaultDayCacheSize = 64

// Metadata keys shared by the calculation strategies
const (
	MetaKeyMaxCount           = "maxCount"
	MetaKeyTotalEvents        = "totalEvents"
	MetaKeyPercentage         = "percentage"
	MetaKeyTotalDuration      = "totalDuration"
	MetaKeyEventCount         = "eventCount"
	MetaKeyUnit               = "unit"
	MetaKeyTotalDays          = "totalDays"
	MetaKeyDateRange          = "dateRange"
	MetaKeyRangeStart         = "start"
	MetaKeyRangeEnd           = "end"
	MetaKeyPeakHour           = "peakHour"
	MetaKeyPeakHourEventCount = "peakHourEventCount"

	MetaKeyGenre   = "genre"
	MetaKeyDevice  = "device"
	MetaKeyCountry = "country"
)

// DurationUnit labels the unit of duration statistics.
const DurationUnit = "seconds"

// HoursPerDay is the number of hour buckets the peak-hours strategy
// always materializes.
const HoursPerDay = 24

// TopPeakHours is how many buckets the peak-hours view surfaces.
const TopPeakHours = 3

// Log message constants
const (
	LogMsgRecomputeFailed      = "Failed to recompute day statistics"
	LogMsgFetchDayEventsFailed = "Failed to fetch events for day"
	LogMsgUpsertFailed         = "Failed to upsert aggregate"
	LogMsgAggregateCreated     = "Aggregate created"
	LogMsgAggregateUpdated     = "Aggregate updated"
	LogMsgDayRecomputed        = "Day statistics recomputed"
)

// Error message constants
const (
	ErrMsgFetchEventsFailed  = "failed to fetch events: %w"
	ErrMsgFetchDayFailed     = "failed to fetch events for date: %w"
	ErrMsgEncodeResultFailed = "failed to encode statistics result: %w"
)
