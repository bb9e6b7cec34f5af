package bootstrap

import (
	"context"

	"github.com/shareshelf/shareshelf/internal/event"
	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/scheduler"
	"github.com/shareshelf/shareshelf/internal/server"
	"github.com/shareshelf/shareshelf/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no new background jobs, drain in-flight ones)
// 3. Event publisher (drain pending retries so no events are lost)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		logger.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	logger.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		logger.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	logger.Info(LogMsgServerStopped)
}
