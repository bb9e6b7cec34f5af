package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shareshelf/shareshelf/internal/auth"
	"github.com/shareshelf/shareshelf/internal/bootstrap"
	"github.com/shareshelf/shareshelf/internal/borrow"
	"github.com/shareshelf/shareshelf/internal/config"
	"github.com/shareshelf/shareshelf/internal/database"
	"github.com/shareshelf/shareshelf/internal/eventlog"
	"github.com/shareshelf/shareshelf/internal/item"
	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/messaging"
	"github.com/shareshelf/shareshelf/internal/rewards"
	"github.com/shareshelf/shareshelf/internal/scheduler"
	"github.com/shareshelf/shareshelf/internal/server"
	"github.com/shareshelf/shareshelf/internal/user"
	"github.com/shareshelf/shareshelf/internal/worker"
)

const shutdownTimeout = 30 * time.Second

// @title ShareShelf API
// @version 1.0
// @description Lending and sharing marketplace backend: item submission,
// @description staff inspection, borrow lifecycle, messaging and a points ledger.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet at this point
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		logger.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("Database connection established",
		"host", cfg.DBHost,
		"database", cfg.DBName)

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	eventLogService := eventlog.NewService(repos.EventLog)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		EventLogService: eventLogService,
	}); err != nil {
		return err
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Services publish through the resilient publisher so a slow or failing
	// subscriber cannot fail a request.
	userService := user.NewService(repos.User, tokens)
	itemService := item.NewService(repos.Item, resilientPublisher)
	borrowService := borrow.NewService(repos.Borrow, repos.Item, resilientPublisher, cfg.BorrowPeriod)
	rewardsService := rewards.NewService(repos.Rewards, resilientPublisher)
	messagingService := messaging.NewService(repos.Message, repos.User)

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, dbPool,
		tokens, userService, itemService, borrowService, rewardsService, messagingService)

	// Background sweep flags loans past their due date
	pool := worker.NewPool(2, 16)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.OverdueSweepInterval, worker.NewOverdueSweep(repos.Borrow, resilientPublisher))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: resilientPublisher,
	})

	return nil
}
