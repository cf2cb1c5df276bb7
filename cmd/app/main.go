package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/IdleHunt_Go/internal/bootstrap"
	"github.com/osse101/IdleHunt_Go/internal/catalog"
	"github.com/osse101/IdleHunt_Go/internal/config"
	"github.com/osse101/IdleHunt_Go/internal/database"
	"github.com/osse101/IdleHunt_Go/internal/eventlog"
	"github.com/osse101/IdleHunt_Go/internal/handler"
	"github.com/osse101/IdleHunt_Go/internal/hunt"
	"github.com/osse101/IdleHunt_Go/internal/notify"
	"github.com/osse101/IdleHunt_Go/internal/player"
	"github.com/osse101/IdleHunt_Go/internal/scheduler"
	"github.com/osse101/IdleHunt_Go/internal/script"
	"github.com/osse101/IdleHunt_Go/internal/server"
	"github.com/osse101/IdleHunt_Go/internal/worker"

	_ "github.com/osse101/IdleHunt_Go/docs" // swagger docs
)

const (
	shutdownTimeout      = 30 * time.Second
	maintenanceWorkers   = 2
	maintenanceQueueSize = 16
	eventCleanupInterval = 24 * time.Hour
	migrationsDir        = "migrations"
)

// @title IdleHunt API
// @version 1.0
// @description Offline hunting reward service for the game server.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := database.Migrate(cfg.GetDBConnString(), migrationsDir); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Hunting content catalogs; a broken file is fatal at startup but only
	// logged on admin reload
	groups, err := catalog.NewGroups(cfg.GroupsPath)
	if err != nil {
		slog.Error("Failed to load hunting groups", "path", cfg.GroupsPath, "error", err)
		os.Exit(1)
	}
	monsters, err := catalog.NewFileMonsters(cfg.MonstersPath)
	if err != nil {
		slog.Error("Failed to load monster catalog", "path", cfg.MonstersPath, "error", err)
		os.Exit(1)
	}

	eventBus, publisher, deadLetter, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	eventLogService := eventlog.NewService(repos.EventLog)
	if err := bootstrap.RegisterEventHandlers(eventBus, eventLogService); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	playerService := player.NewService(repos.Player)

	var notifier notify.Notifier
	if cfg.DiscordToken != "" {
		discordNotifier, derr := notify.NewDiscordNotifier(cfg.DiscordToken, cfg.DiscordChannelID)
		if derr != nil {
			slog.Warn("Discord notifier unavailable, falling back to log notifier", "error", derr)
			notifier = notify.NewLogNotifier()
		} else {
			notifier = discordNotifier
		}
	} else {
		notifier = notify.NewLogNotifier()
	}

	huntService := hunt.NewService(repos.Hunt, groups, monsters, playerService, notifier, publisher)

	bridge, err := script.NewBridge(cfg.CommandScriptPath)
	if err != nil {
		slog.Error("Failed to load command script", "path", cfg.CommandScriptPath, "error", err)
		os.Exit(1)
	}
	dispatcher := script.NewDispatcher(bridge, huntService)

	huntHandler := handler.NewHuntHandler(huntService)
	adminHandler := handler.NewAdminHandler(huntService, eventLogService, groups, monsters, bridge)
	commandHandler := handler.NewCommandHandler(dispatcher)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, huntHandler, adminHandler, commandHandler)

	// Background maintenance: periodic event log cleanup
	pool := worker.NewPool(maintenanceWorkers, maintenanceQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(eventCleanupInterval, eventlog.NewCleanupJob(eventLogService, cfg.EventRetentionDays))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("Received shutdown signal", "signal", sig)
	case err := <-serverErr:
		slog.Error("Server stopped unexpectedly", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		DeadLetter: deadLetter,
	})
}
