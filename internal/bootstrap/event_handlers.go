package bootstrap

import (
	"fmt"

	"github.com/shareshelf/shareshelf/internal/event"
	"github.com/shareshelf/shareshelf/internal/eventlog"
	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event-based business metrics)
// - Event logger (persists events to the database audit table)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	logger.Info(LogMsgEventLoggerInitialized)

	return nil
}
