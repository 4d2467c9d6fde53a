package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hiddenspaces/backend/internal/adapters/cache"
	"github.com/hiddenspaces/backend/internal/adapters/database"
	"github.com/hiddenspaces/backend/internal/api/handlers"
	"github.com/hiddenspaces/backend/internal/api/routes"
	"github.com/hiddenspaces/backend/internal/application/services"
	"github.com/hiddenspaces/backend/internal/domain/providers"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
	"github.com/hiddenspaces/backend/internal/infrastructure/clients/postgres"
	"github.com/hiddenspaces/backend/internal/infrastructure/clients/redis"
	"github.com/hiddenspaces/backend/internal/infrastructure/observability"
	"github.com/hiddenspaces/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger("hidden-spaces-api", cfg.Env)

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	// Initialize Redis client; the service works without caching
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters
	userAdapter := database.NewUserAdapter(pgClient)
	featureAdapter := database.NewFeatureAdapter(pgClient)
	reviewAdapter := database.NewReviewAdapter(pgClient)

	baseSpaceAdapter := database.NewSpaceAdapter(pgClient)
	var spaceAdapter repositories.SpaceRepository
	var invalidator services.SpaceCacheInvalidator
	if cacheProvider != nil {
		cached := database.NewCachedSpaceAdapter(baseSpaceAdapter, cacheProvider)
		spaceAdapter = cached
		invalidator = cached
		log.Info().Msg("space adapter wrapped with caching layer")
	} else {
		spaceAdapter = baseSpaceAdapter
	}

	// Initialize services
	policy := services.OwnershipPolicy{Enforced: cfg.Policy.OwnershipEnforced}
	featureService := services.NewFeatureService(featureAdapter)
	userService := services.NewUserService(userAdapter)
	spaceService := services.NewSpaceService(spaceAdapter, userAdapter, featureService, policy)
	reviewService := services.NewReviewService(reviewAdapter, spaceAdapter, userAdapter, invalidator)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	spaceHandler := handlers.NewSpaceHandler(spaceService)
	featureHandler := handlers.NewFeatureHandler(featureService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	router := routes.NewRouter(userHandler, spaceHandler, featureHandler, reviewHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
