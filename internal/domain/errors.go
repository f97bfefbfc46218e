package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Ingestion validation errors
	ErrMsgMissingFields    = "missing required fields"
	ErrMsgInvalidDuration  = "duration must be a positive number"
	ErrMsgInvalidTimestamp = "invalid timestamp format"

	// Lookup errors
	ErrMsgEventNotFound     = "event not found"
	ErrMsgAggregateNotFound = "aggregate not found"
	ErrMsgAggregateExists   = "aggregate already exists for type and date"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrMissingFields    = errors.New(ErrMsgMissingFields)
	ErrInvalidDuration  = errors.New(ErrMsgInvalidDuration)
	ErrInvalidTimestamp = errors.New(ErrMsgInvalidTimestamp)

	ErrEventNotFound     = errors.New(ErrMsgEventNotFound)
	ErrAggregateNotFound = errors.New(ErrMsgAggregateNotFound)
	ErrAggregateExists   = errors.New(ErrMsgAggregateExists)
)

// MetadataKeyMessage carries the sentinel no-data message in strategy
// metadata when a calculation receives zero events.
const (
	MetadataKeyMessage = "message"
	MsgNoEvents        = "no events available"
)
