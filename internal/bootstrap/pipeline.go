package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/musiclog/musiclog/internal/notify"
	"github.com/musiclog/musiclog/internal/stats"
)

// InitializeStatisticsPipeline wires the notification bus to the statistics
// recomputation observer. Every ingested listening event flows through the
// bus, and the observer recomputes and persists the affected day's aggregates.
// Returns the bus and the statistics service backing the read API.
func InitializeStatisticsPipeline(repos *Repositories) (*notify.Bus, stats.Service, error) {
	registry := stats.NewRegistry()

	statsService, err := stats.NewService(registry, repos.Event)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create statistics service: %w", err)
	}

	observer := stats.NewObserver(statsService, repos.Event, repos.Aggregate)

	bus := notify.NewBus()
	bus.Attach(observer)

	slog.Info(LogMsgPipelineInitialized,
		"strategies", len(registry.All()),
		"subscribers", bus.Count())

	return bus, statsService, nil
}
