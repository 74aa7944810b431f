package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database (empty runs the service on the built-in in-memory seed)
	DatabaseURL string

	// Redis pool cache (empty disables caching)
	RedisAddr     string
	RedisPassword string
	PoolCacheTTL  time.Duration

	// Recommendation engine
	RecommendationTopK int
	FlexFallbackMin    int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		PoolCacheTTL:       time.Duration(getEnvInt("POOL_CACHE_TTL_MINUTES", 30)) * time.Minute,
		RecommendationTopK: getEnvInt("RECOMMENDATION_TOP_K", 8),
		FlexFallbackMin:    getEnvInt("FLEX_FALLBACK_MIN", 3),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
