package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AmadeusAI/mobidex/internal/bootstrap"
	"github.com/AmadeusAI/mobidex/pkg/config"
	"github.com/AmadeusAI/mobidex/pkg/httplib/healthcheck"
	"github.com/AmadeusAI/mobidex/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(logger.Level(cfg.App.LogLevel))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	b, err := (&bootstrap.Bootstrap{}).Init(ctx, bootstrap.BootstrapConfig{
		Config: cfg,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(err)
		os.Exit(1)
	}
	defer b.Close()

	// Keep orderbook snapshots fresh while the service runs.
	go func() {
		if err := b.Infrastructure.OrderbookCache.Run(ctx); err != nil && ctx.Err() == nil {
			appLogger.Error(err)
		}
	}()

	health := healthcheck.HealthCheck{
		// Serving quotes requires the relayer's asset list, including the
		// quote asset, to be resolvable.
		Ready: func() error {
			if b.Infrastructure.AssetCatalog.QuoteAsset() == nil {
				return fmt.Errorf("quote asset %q not resolvable from relayer", cfg.Relayer.QuoteAssetSymbol)
			}
			return nil
		},
	}
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: health.Handler(b.Router()),
	}

	go func() {
		appLogger.Info("quote service started",
			logger.NewField("app", cfg.App.Name),
			logger.NewField("environment", cfg.App.Environment),
			logger.NewField("port", cfg.App.Port),
			logger.NewField("relayer", cfg.Relayer.HTTPEndpoint),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error(err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}

	appLogger.Info("shutting down quote service")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error(err)
	}

	appLogger.Info("quote service stopped")
}
