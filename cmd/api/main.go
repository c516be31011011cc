package main

// @title Foodspot Microservice API
// @version 1.0.0
// @description Микросервис поиска заведений питания вокруг точки. Кандидаты приходят из OpenStreetMap (Overpass API) или из генеративного источника, нормализуются в единую модель, фильтруются и ранжируются по расстоянию или популярности.
// @description
// @description Основные возможности:
// @description - Поиск заведений в радиусе с текстовым запросом и фильтрами
// @description - Справочник категорий для фильтрации
// @description - Статистика по истории поиска

// @contact.name API Support
// @contact.email support@foodspot-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/foodspot-microservice/docs/swagger"
	"github.com/foodspot-microservice/internal/config"
	httpDelivery "github.com/foodspot-microservice/internal/delivery/http"
	"github.com/foodspot-microservice/internal/delivery/http/handler"
	"github.com/foodspot-microservice/internal/domain/repository"
	"github.com/foodspot-microservice/internal/infrastructure/genai"
	"github.com/foodspot-microservice/internal/infrastructure/overpass"
	"github.com/foodspot-microservice/internal/pkg/logger"
	"github.com/foodspot-microservice/internal/repository/cache"
	"github.com/foodspot-microservice/internal/repository/postgres"
	redisRepo "github.com/foodspot-microservice/internal/repository/redis"
	"github.com/foodspot-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Foodspot Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and venue sources
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	historyRepo := postgres.NewHistoryRepository(db, log)

	structuredSource := overpass.NewClient(&cfg.Overpass, log)

	var generativeSource repository.VenueSource
	if cfg.GenAI.Enabled {
		generativeSource, err = genai.NewClient(context.Background(), &cfg.GenAI, log)
		if err != nil {
			log.Fatal("Failed to initialize generative venue source", zap.Error(err))
		}
		log.Info("Generative venue source enabled", zap.String("model", cfg.GenAI.Model))
	}

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	discoveryUC := usecase.NewDiscoveryUseCase(
		structuredSource,
		generativeSource,
		cacheRepo,
		streamRepo,
		cfg.Search,
		cfg.Cache.SearchCacheTTL,
		log,
	)

	statsUC := usecase.NewStatsUseCase(
		historyRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers and server
	venueHandler := handler.NewVenueHandler(discoveryUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	server := httpDelivery.NewServer(cfg, log, venueHandler, statsHandler)

	log.Info("HTTP server initialized")

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
