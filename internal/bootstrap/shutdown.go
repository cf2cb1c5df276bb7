package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleHunt_Go/internal/event"
	"github.com/osse101/IdleHunt_Go/internal/scheduler"
	"github.com/osse101/IdleHunt_Go/internal/server"
	"github.com/osse101/IdleHunt_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DeadLetter *event.DeadLetterWriter
}

// GracefulShutdown stops the application components in dependency order:
// the HTTP server first (no new requests), then the scheduler (no new jobs),
// then the worker pool (drain queued jobs), and finally the dead-letter
// writer once no publisher can still write to it.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgShuttingDownScheduler)
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		slog.Info(LogMsgShuttingDownWorkers)
		components.WorkerPool.Stop()
	}

	if components.DeadLetter != nil {
		slog.Info(LogMsgClosingDeadLetter)
		if err := components.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
