package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/musiclog/musiclog/internal/concurrency"
	"github.com/musiclog/musiclog/internal/domain"
	"github.com/musiclog/musiclog/internal/logger"
	"github.com/musiclog/musiclog/internal/metrics"
	"github.com/musiclog/musiclog/internal/repository"
)

// Observer subscribes to newly ingested events and keeps the per-day
// aggregates current. On every event it recomputes every registered
// statistic for that event's calendar day from a fresh query - aggregates
// always reflect a full recomputation, never an incremental delta.
//
// The observer is stateless; recomputations for the same day are serialized
// through a keyed lock so concurrent events landing on one day cannot race
// the find-then-write upsert. The unique (type, date) index on the
// statistics table backs this up at the database level.
type Observer struct {
	service    Service
	events     repository.Event
	aggregates repository.Aggregate
	locks      *concurrency.LockManager
}

// NewObserver creates the statistics observer.
func NewObserver(service Service, events repository.Event, aggregates repository.Aggregate) *Observer {
	return &Observer{
		service:    service,
		events:     events,
		aggregates: aggregates,
		locks:      concurrency.NewLockManager(),
	}
}

// Name identifies the observer for bus de-duplication.
func (o *Observer) Name() string {
	return ObserverName
}

// Update recomputes all statistics for the event's day. Every failure is
// logged and contained here; Update never reports an error back to the
// notification bus. A failure on one strategy does not roll back aggregates
// already written in the same pass.
func (o *Observer) Update(ctx context.Context, event domain.ListeningEvent) error {
	log := logger.FromContext(ctx)
	day := event.Day()
	dayKey := day.Format(DateKeyFormat)

	unlock := o.locks.Lock(dayKey)
	defer unlock()

	start := time.Now()

	dayEvents, err := o.events.FindByDate(ctx, day)
	if err != nil {
		metrics.RecordRecompute(time.Since(start), false)
		log.Error(LogMsgFetchDayEventsFailed, "date", dayKey, "error", err)
		return nil
	}
	if dayEvents == nil {
		dayEvents = []domain.ListeningEvent{}
	}

	recomputed := 0
	for _, strategy := range o.service.Registry().All() {
		result, err := o.service.CalculateStatistics(ctx, strategy.Type(), dayEvents)
		if err != nil {
			log.Error(LogMsgRecomputeFailed, "type", strategy.Type(), "date", dayKey, "error", err)
			continue
		}
		if result == nil {
			continue
		}
		if err := o.upsert(ctx, day, *result); err != nil {
			log.Error(LogMsgUpsertFailed, "type", strategy.Type(), "date", dayKey, "error", err)
			continue
		}
		recomputed++
	}

	o.service.InvalidateDay(day)
	metrics.RecordRecompute(time.Since(start), true)

	log.Debug(LogMsgDayRecomputed, "date", dayKey, "event_count", len(dayEvents), "statistics", recomputed)
	return nil
}

// upsert overwrites the aggregate for (result.Type, day), creating the row
// on first computation.
func (o *Observer) upsert(ctx context.Context, day time.Time, result domain.StatisticsResult) error {
	value, err := json.Marshal(result.Value)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeResultFailed, err)
	}
	var metadata json.RawMessage
	if result.Metadata != nil {
		if metadata, err = json.Marshal(result.Metadata); err != nil {
			return fmt.Errorf(ErrMsgEncodeResultFailed, err)
		}
	}

	log := logger.FromContext(ctx)

	existing, err := o.aggregates.FindByTypeAndDate(ctx, result.Type, day)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Value = value
		existing.Metadata = metadata
		if err := o.aggregates.Update(ctx, existing); err != nil {
			return err
		}
		metrics.AggregatesUpserted.WithLabelValues(string(result.Type)).Inc()
		log.Debug(LogMsgAggregateUpdated, "type", result.Type, "date", day.Format(DateKeyFormat))
		return nil
	}

	agg := &domain.Aggregate{
		Type:     result.Type,
		Date:     day,
		Value:    value,
		Metadata: metadata,
	}
	if err := o.aggregates.Create(ctx, agg); err != nil {
		return err
	}
	metrics.AggregatesUpserted.WithLabelValues(string(result.Type)).Inc()
	log.Debug(LogMsgAggregateCreated, "type", result.Type, "date", day.Format(DateKeyFormat))
	return nil
}
