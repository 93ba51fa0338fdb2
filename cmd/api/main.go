package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/revel-xyz/revel-gate/internal/adapter"
	"github.com/revel-xyz/revel-gate/internal/api/middleware"
	"github.com/revel-xyz/revel-gate/internal/api/server"
	"github.com/revel-xyz/revel-gate/internal/coins"
	"github.com/revel-xyz/revel-gate/internal/config"
	"github.com/revel-xyz/revel-gate/internal/events"
	"github.com/revel-xyz/revel-gate/internal/events/jetstream"
	"github.com/revel-xyz/revel-gate/internal/gate"
	"github.com/revel-xyz/revel-gate/internal/logger"
	"github.com/revel-xyz/revel-gate/internal/oracle"
	"github.com/revel-xyz/revel-gate/internal/oracle/erc20"
	"github.com/revel-xyz/revel-gate/internal/oracle/zora"
	"github.com/revel-xyz/revel-gate/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Revel gate API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Oracle.RequestTimeout)

	// Build the balance oracle for the configured provider, wrapped with retry
	var balanceOracle oracle.BalanceOracle
	switch cfg.Oracle.Provider {
	case "zora":
		balanceOracle = zora.NewClient(cfg.Oracle.ZoraAPIURL, httpClient)
	case "erc20":
		ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Oracle.RPCURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Ethereum RPC", zap.Error(err), zap.String("rpc_url", cfg.Oracle.RPCURL))
		}
		defer ethClient.Close()
		balanceOracle = erc20.NewClient(ethClient, cfg.Oracle.CoinDecimals)
	default:
		logger.FatalCtx(ctx, "Unknown oracle provider", zap.String("provider", cfg.Oracle.Provider))
	}
	balanceOracle = oracle.WithRetry(balanceOracle, oracle.RetryConfig{
		MaxAttempts:     uint64(cfg.Oracle.MaxAttempts),
		InitialInterval: cfg.Oracle.InitialInterval,
		MaxInterval:     cfg.Oracle.MaxInterval,
	})
	logger.InfoCtx(ctx, "Balance oracle ready", zap.String("provider", cfg.Oracle.Provider))

	// Coin registry for drop creation
	registry := coins.NewRegistry(cfg.Coins.APIURL, adapter.NewHTTPClient(cfg.Coins.RequestTimeout))

	// Connect to NATS for the drop activity feed when configured
	var publisher events.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, drop activity events will not be published")
	}

	// Compose the gate service
	gateService := gate.NewService(dataStore, balanceOracle, registry, publisher, adapter.NewClock())

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, gateService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
