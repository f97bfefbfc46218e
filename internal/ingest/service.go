package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/musiclog/musiclog/internal/domain"
	"github.com/musiclog/musiclog/internal/logger"
	"github.com/musiclog/musiclog/internal/metrics"
	"github.com/musiclog/musiclog/internal/repository"
)

// EventInput is the raw ingestion payload for one listening event.
type EventInput struct {
	UserID    string `json:"userId" validate:"required"`
	TrackID   string `json:"trackId" validate:"required"`
	Artist    string `json:"artist" validate:"required"`
	Duration  int    `json:"duration" validate:"gt=0"`
	Timestamp string `json:"timestamp" validate:"required"`
	Genre     string `json:"genre,omitempty"`
	Country   string `json:"country,omitempty"`
	Device    string `json:"device,omitempty"`
}

// Notifier fans a newly created event out to subscribers.
type Notifier interface {
	Notify(ctx context.Context, event domain.ListeningEvent)
}

// Service handles listening-event ingestion.
type Service interface {
	// ProcessEvent validates, persists and publishes one event. Validation
	// failure is the only error path that reaches the caller; notification
	// failures are contained downstream.
	ProcessEvent(ctx context.Context, input EventInput) (*domain.ListeningEvent, error)

	// ProcessBatch processes inputs sequentially. A failing item is logged
	// and skipped; the result holds the successfully created events in
	// their original relative order. The batch itself never fails because
	// a subset of items failed.
	ProcessBatch(ctx context.Context, inputs []EventInput) ([]domain.ListeningEvent, error)
}

type service struct {
	events   repository.Event
	notifier Notifier
	validate *validator.Validate
}

// NewService creates an ingestion service publishing to the given notifier.
func NewService(events repository.Event, notifier Notifier) Service {
	return &service{
		events:   events,
		notifier: notifier,
		validate: validator.New(),
	}
}

func (s *service) ProcessEvent(ctx context.Context, input EventInput) (*domain.ListeningEvent, error) {
	log := logger.FromContext(ctx)

	timestamp, err := s.validateInput(input)
	if err != nil {
		metrics.IngestFailures.Inc()
		return nil, err
	}

	event := &domain.ListeningEvent{
		UserID:    input.UserID,
		TrackID:   input.TrackID,
		Artist:    input.Artist,
		Genre:     input.Genre,
		Country:   input.Country,
		Device:    input.Device,
		Duration:  input.Duration,
		Timestamp: timestamp,
	}

	if err := s.events.Create(ctx, event); err != nil {
		log.Error(LogMsgCreateEventFailed, "user_id", input.UserID, "track_id", input.TrackID, "error", err)
		return nil, fmt.Errorf(ErrMsgCreateEventFailed, err)
	}

	metrics.EventsIngested.WithLabelValues(deviceLabel(input.Device)).Inc()
	log.Debug(LogMsgEventIngested, "event_id", event.ID, "user_id", event.UserID, "artist", event.Artist)

	// Fan out to subscribers and wait for all of them to settle. Subscriber
	// failures are logged inside the bus and never fail the ingestion.
	notifyStart := time.Now()
	s.notifier.Notify(ctx, *event)
	metrics.NotifyDuration.Observe(time.Since(notifyStart).Seconds())

	return event, nil
}

func (s *service) ProcessBatch(ctx context.Context, inputs []EventInput) ([]domain.ListeningEvent, error) {
	log := logger.FromContext(ctx)

	processed := make([]domain.ListeningEvent, 0, len(inputs))
	for i, input := range inputs {
		event, err := s.ProcessEvent(ctx, input)
		if err != nil {
			log.Warn(LogMsgBatchItemSkipped, "index", i, "user_id", input.UserID, "error", err)
			continue
		}
		processed = append(processed, *event)
	}

	log.Info(LogMsgBatchProcessed, "submitted", len(inputs), "processed", len(processed))
	return processed, nil
}

// validateInput enforces the ingestion contract: required identity fields,
// positive duration, parseable timestamp. Each failure maps to one fixed
// domain error message.
func (s *service) validateInput(input EventInput) (time.Time, error) {
	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return time.Time{}, fmt.Errorf("%w: %s", domain.ErrMissingFields, err)
		}

		var missing []string
		durationInvalid := false
		for _, fe := range verrs {
			switch fe.Field() {
			case "UserID":
				missing = append(missing, FieldUserID)
			case "TrackID":
				missing = append(missing, FieldTrackID)
			case "Artist":
				missing = append(missing, FieldArtist)
			case "Timestamp":
				missing = append(missing, FieldTimestamp)
			case "Duration":
				durationInvalid = true
			}
		}
		if len(missing) > 0 {
			return time.Time{}, fmt.Errorf("%w: %s", domain.ErrMissingFields, strings.Join(missing, ", "))
		}
		if durationInvalid {
			return time.Time{}, domain.ErrInvalidDuration
		}
	}

	timestamp, err := time.Parse(time.RFC3339, input.Timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, input.Timestamp)
	}
	return timestamp, nil
}

func deviceLabel(device string) string {
	if device == "" {
		return "unknown"
	}
	return device
}
