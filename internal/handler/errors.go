package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Event endpoint error messages
	ErrMsgInvalidEventID      = "Invalid event id"
	ErrMsgEventNotFoundHTTP   = "Event not found"
	ErrMsgEventsMustBeArray   = "Events must be an array"
	ErrMsgCreateEventFailed   = "Failed to create event"
	ErrMsgProcessBatchFailed  = "Failed to process event batch"
	ErrMsgGetEventsFailed     = "Failed to retrieve events"
	ErrMsgGetEventFailed      = "Failed to retrieve event"

	// Statistics endpoint error messages
	ErrMsgInvalidDate            = "Invalid date, expected YYYY-MM-DD"
	ErrMsgUnknownStatisticType   = "Unknown statistic type"
	ErrMsgCalculateStatsFailed   = "Failed to calculate statistics"
	ErrMsgGetDailyStatsFailed    = "Failed to retrieve daily statistics"
)
