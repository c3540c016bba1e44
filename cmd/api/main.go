package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nightcap/backend/config"
	"github.com/nightcap/backend/internal/catalog"
	"github.com/nightcap/backend/internal/logger"
	"github.com/nightcap/backend/internal/router"
	"github.com/nightcap/backend/internal/server"
	"github.com/nightcap/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	gin.SetMode(cfg.Environment.GinMode())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the cocktail catalog
	src := catalog.Source{Path: cfg.CatalogPath}
	if cfg.CatalogS3Bucket != "" {
		objects, err := config.NewS3Config(ctx, cfg.CatalogS3Bucket)
		if err != nil {
			zapLogger.Fatal("Failed to initialize S3 client", zap.Error(err))
		}
		src = catalog.Source{ObjectKey: cfg.CatalogS3Key, Objects: objects}
	}
	recipes, err := catalog.Load(ctx, src)
	if err != nil {
		zapLogger.Fatal("Failed to load cocktail catalog", zap.Stringer("source", src), zap.Error(err))
	}
	zapLogger.Info("Cocktail catalog loaded",
		zap.Stringer("source", src),
		zap.Int("cocktails", len(recipes)),
	)

	// Initialize services
	recipeService := service.NewRecipeService(recipes)
	llmService := service.NewLLMService(
		service.NewOpenAIClient(cfg),
		service.LLMOptions{Model: cfg.OpenAIModel, MaxTokens: cfg.OpenAIMaxTokens},
		zapLogger,
	)

	engine := router.SetupRouter(router.Options{
		Logger:         zapLogger,
		AllowedOrigins: cfg.AllowedOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
	}, recipeService, llmService)

	zapLogger.Info("Configuration loaded",
		zap.String("environment", string(cfg.Environment)),
		zap.String("addr", cfg.Addr()),
		zap.String("model", cfg.OpenAIModel),
		zap.Strings("allowed_origins", cfg.AllowedOrigins),
		zap.Bool("metrics", cfg.MetricsEnabled),
	)

	// Create and start server
	srv := server.New(cfg, engine, zapLogger)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}
