package main

import (
	"fmt"
	"log"

	"github.com/cafevirtuel/backend/config"
	httpDelivery "github.com/cafevirtuel/backend/internal/delivery/http"
	"github.com/cafevirtuel/backend/internal/infrastructure/cache"
	"github.com/cafevirtuel/backend/internal/infrastructure/catalog"
	"github.com/cafevirtuel/backend/internal/usecase"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting Café Virtuel backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	// Initialize infrastructure dependencies
	products, err := catalog.NewDefault()
	if err != nil {
		logger.Fatal("invalid catalog tables", zap.Error(err))
	}

	sessions := cache.NewMemoryCache(cfg.Session.CleanupInterval)
	defer sessions.Close()

	logger.Info("session store ready",
		zap.Duration("ttl", cfg.Session.TTL),
		zap.Duration("cleanup_interval", cfg.Session.CleanupInterval))

	// Initialize usecase layer
	customizer := usecase.NewCustomizerService(
		products,
		sessions,
		logger.Named("customizer"),
		usecase.CustomizerServiceConfig{
			SessionTTL: cfg.Session.TTL,
			Currency:   cfg.Pricing.Currency,
			SceneSeed:  cfg.Scene.Seed,
		},
	)

	if cfg.Scene.Seed != 0 {
		logger.Info("scene scatter is reproducible", zap.Int64("seed", cfg.Scene.Seed))
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(customizer, logger.Named("http"))

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger.Named("http"))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

// newLogger builds a JSON logger in production and a console logger elsewhere
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.Server.Environment == "production" {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
