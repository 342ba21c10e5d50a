package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campaign-hub/auth"
	"campaign-hub/infrastructure/http/server"
	"campaign-hub/infrastructure/storage"
	"campaign-hub/internal"
	"campaign-hub/observability"
	"campaign-hub/runtime"
	"campaign-hub/runtime/workers"
	"campaign-hub/services"
	"campaign-hub/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal arrives.
// Returning instead of exiting lets the deferred database close run.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Broadcast core
	store := storage.NewCampaignStore(db, log)
	registry := runtime.NewRegistry()
	monitoring := observability.NewMonitoringManager(log, registry.Total)
	hub := runtime.NewHub(log, registry, monitoring, config.SendTimeout, config.MaxConcurrentSends)

	// 4. Services
	tokens := auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration)
	authService := services.NewAuthService(log, storage.NewUserRepository(db), store, tokens, auth.NewCampaignValidator(tokens))
	httpServer := server.NewServer(log, server.Dependencies{
		Auth:          authService,
		Campaigns:     services.NewCampaignService(log, store, authService, hub),
		Subscriptions: services.NewSubscriptionService(log, store, registry, services.NewBootstrapService(log, store), monitoring),
		Themes:        services.NewThemeService(store),
		Tokens:        tokens,
		Stats:         monitoring,
		SinkOptions: sink.Options{
			BufferSize:      config.ConnectionBufferSize,
			PingInterval:    config.WSPingInterval,
			PongWait:        config.WSPongWait,
			WriteTimeout:    config.WSWriteTimeout,
			MaxMessageBytes: config.WSMaxMessageBytes,
		},
		AllowedOrigins: config.Origins(),
		Version:        Version,
	})

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewHTTPServerWorker(log, config.Address(), httpServer.Handler(), config.ReadHeaderTimeout, config.ShutdownTimeout),
		workers.NewMonitoringWorker(log, monitoring, config.MetricInterval),
	)

	log.Info("Starting campaign hub", "version", Version, "env", config.Env, "address", config.Address())
	sup.Run(ctx)

	log.Info("Program stopped cleanly", "open_connections", registry.Total())
	return nil
}
