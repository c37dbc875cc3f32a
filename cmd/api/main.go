package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/proptoken/proptoken-backend/internal/adapter"
	"github.com/proptoken/proptoken-backend/internal/api/middleware"
	"github.com/proptoken/proptoken-backend/internal/api/rest"
	"github.com/proptoken/proptoken-backend/internal/api/server"
	"github.com/proptoken/proptoken-backend/internal/audit"
	"github.com/proptoken/proptoken-backend/internal/cache"
	"github.com/proptoken/proptoken-backend/internal/config"
	"github.com/proptoken/proptoken-backend/internal/ipfs"
	"github.com/proptoken/proptoken-backend/internal/logger"
	"github.com/proptoken/proptoken-backend/internal/messaging"
	"github.com/proptoken/proptoken-backend/internal/payment"
	"github.com/proptoken/proptoken-backend/internal/property"
	"github.com/proptoken/proptoken-backend/internal/providers/hedera"
	"github.com/proptoken/proptoken-backend/internal/providers/jetstream"
	"github.com/proptoken/proptoken-backend/internal/providers/mirrornode"
	"github.com/proptoken/proptoken-backend/internal/purchase"
	"github.com/proptoken/proptoken-backend/internal/registry"
	"github.com/proptoken/proptoken-backend/internal/store"
	"github.com/proptoken/proptoken-backend/internal/tokenization"
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
			"service": "proptoken-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting property tokenization API")

	// Connect to database and apply the schema
	db, err := store.Open(cfg.Database, cfg.Debug)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	dataStore := store.NewStore(db)
	logger.InfoCtx(ctx, "Connected to database", zap.String("driver", cfg.Database.Driver))

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Ledger client
	ledger, err := hedera.NewLedger(hedera.Config{
		Network:           cfg.Hedera.Network,
		OperatorID:        cfg.Hedera.OperatorID,
		OperatorKey:       cfg.Hedera.OperatorKey,
		MaxTransactionFee: cfg.Hedera.MaxTransactionFee,
	})
	if err != nil {
		logger.Fatal("Failed to initialize ledger client", zap.Error(err))
	}
	defer func() {
		if err := ledger.Close(); err != nil {
			logger.Warn("Failed to close ledger client", zap.Error(err))
		}
	}()

	// Mirror node client with a process-wide read cache
	mirror := mirrornode.NewClient(mirrornode.Config{
		BaseURL:     cfg.MirrorNode.URL,
		Timeout:     cfg.MirrorNode.Timeout,
		MaxAttempts: cfg.MirrorNode.MaxAttempts,
		RetryDelay:  cfg.MirrorNode.RetryDelay,
		TTL: mirrornode.TTLs{
			Balances:  cfg.MirrorNode.CacheTTL.Balances,
			Transfers: cfg.MirrorNode.CacheTTL.Transfers,
			Messages:  cfg.MirrorNode.CacheTTL.Messages,
			Account:   cfg.MirrorNode.CacheTTL.Account,
			Token:     cfg.MirrorNode.CacheTTL.Token,
		},
	}, adapter.NewHTTPClient(cfg.MirrorNode.Timeout), cache.New())

	// Content store
	ipfsHTTP := adapter.NewHTTPClient(cfg.IPFS.Timeout)
	provider, err := ipfs.NewProvider(ipfs.ProviderConfig{
		Provider:        cfg.IPFS.Provider,
		APIURL:          cfg.IPFS.APIURL,
		PinataAPIKey:    cfg.IPFS.PinataAPIKey,
		PinataSecretKey: cfg.IPFS.PinataSecretKey,
		PinataJWT:       cfg.IPFS.PinataJWT,
		ProjectID:       cfg.IPFS.ProjectID,
		ProjectSecret:   cfg.IPFS.ProjectSecret,
	}, ipfsHTTP, jsonAdapter)
	if err != nil {
		logger.Fatal("Failed to initialize IPFS provider", zap.Error(err))
	}
	content := ipfs.NewStore(ipfs.Config{
		Gateways:      cfg.IPFS.Gateways,
		UploadWorkers: cfg.IPFS.UploadWorkers,
	}, provider, ipfsHTTP, jsonAdapter)
	defer content.Close()

	// Lifecycle events go to JetStream when configured
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.Fatal("Failed to connect lifecycle event publisher", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, lifecycle events are dropped")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	// Domain services
	auditLog := audit.NewLog(cfg.Hedera.AuditTopicID, ledger, mirror, dataStore, clock, jsonAdapter)
	tokenRegistry := registry.New(dataStore)

	defaultPrice, err := decimal.NewFromString(cfg.Purchase.DefaultPrice)
	if err != nil {
		logger.Fatal("Invalid purchase.default_price", zap.Error(err), zap.String("value", cfg.Purchase.DefaultPrice))
	}

	properties := property.NewService(dataStore, content, publisher, clock, jsonAdapter, property.Defaults{
		PricePerToken: defaultPrice,
		Currency:      cfg.Purchase.Currency,
	})
	tokens := tokenization.NewService(tokenization.Config{
		TreasuryAccountID: cfg.Hedera.TreasuryID,
		TreasuryKey:       cfg.Hedera.TreasuryKey,
		TreasuryBalance:   cfg.Hedera.TreasuryBalance,
	}, dataStore, tokenRegistry, ledger, auditLog, mirror, publisher, clock, jsonAdapter)
	purchases := purchase.NewOrchestrator(purchase.Config{
		MinQuantity:  cfg.Purchase.MinQuantity,
		MaxQuantity:  cfg.Purchase.MaxQuantity,
		DefaultPrice: defaultPrice,
		Currency:     cfg.Purchase.Currency,
	}, dataStore, tokenRegistry, payment.NewSimulator(cfg.Purchase.PaymentLatency, clock),
		ledger, auditLog, mirror, publisher, clock)

	handler := rest.NewHandler(cfg.Debug, rest.Deps{
		Properties:    properties,
		Tokens:        tokens,
		Purchases:     purchases,
		Registry:      tokenRegistry,
		Mirror:        mirror,
		AuditLog:      auditLog,
		Content:       content,
		Store:         dataStore,
		Clock:         clock,
		MaxUploadSize: cfg.Server.MaxUploadSize,
		Network:       cfg.Hedera.Network,
		Operator:      ledger.OperatorAccountID(),
	})

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}
	srv := server.New(serverConfig, handler)

	// Start server in a goroutine
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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "server"))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
