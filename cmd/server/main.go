package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coachkit/draft-coach/internal/api"
	"github.com/coachkit/draft-coach/internal/cache"
	"github.com/coachkit/draft-coach/internal/config"
	"github.com/coachkit/draft-coach/internal/narrative"
	"github.com/coachkit/draft-coach/internal/repository"
	"github.com/coachkit/draft-coach/internal/repository/memory"
	"github.com/coachkit/draft-coach/internal/repository/postgres"
	"github.com/coachkit/draft-coach/internal/service"
	"github.com/coachkit/draft-coach/internal/websocket"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	// Initialize repositories. Without a database URL the service runs
	// entirely on the bundled reference data.
	var repos *repository.Repositories
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := postgres.SeedIfEmpty(ctx, db); err != nil {
			log.Fatalf("failed to seed reference data: %v", err)
		}
		repos = postgres.NewRepositories(db)
		log.Printf("Using postgres reference store")
	} else {
		repos = memory.NewSeededRepositories()
		log.Printf("DATABASE_URL not set, using in-memory reference store")
	}

	// Optional Redis read-through cache for player pools.
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		repos.PlayerPool = cache.NewPoolCache(client, repos.PlayerPool, cfg.PoolCacheTTL)
		log.Printf("Player pool cache enabled (ttl=%s)", cfg.PoolCacheTTL)
	}

	// Initialize services
	services, err := service.NewServices(ctx, repos, narrative.NewTemplateGenerator(), cfg)
	if err != nil {
		log.Fatalf("failed to initialize services: %v", err)
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub(services.Draft)
	go hub.Run()

	// Initialize router
	router := api.NewRouter(services, hub)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	hub.Stop()

	log.Println("Server stopped")
}
