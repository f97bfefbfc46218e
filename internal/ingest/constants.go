package ingest

// JSON field names used in validation error messages
const (
	FieldUserID    = "userId"
	FieldTrackID   = "trackId"
	FieldArtist    = "artist"
	FieldTimestamp = "timestamp"
)

// Log message constants
const (
	LogMsgEventIngested     = "Listening event ingested"
	LogMsgCreateEventFailed = "Failed to persist listening event"
	LogMsgBatchItemSkipped  = "Batch item failed, skipping"
	LogMsgBatchProcessed    = "Batch processed"
)

// Error message constants
const (
	ErrMsgCreateEventFailed = "failed to create event: %w"
)
