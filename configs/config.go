package configs

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort           string
	LogLevel          string
	FeedCapacity      int
	HotLikeThreshold  int
	FanoutWorkers     int
	FeedDefaultLimit  int
	FanoutAppendDelay time.Duration
	SeedDemoData      bool
	SeedUsers         int
	SeedPosts         int
}

func LoadConfig() *Config {
	return &Config{
		AppPort:           getEnv("APP_PORT", ":8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		FeedCapacity:      getEnvInt("FEED_CAPACITY", 1000),
		HotLikeThreshold:  getEnvInt("HOT_LIKE_THRESHOLD", 100),
		FanoutWorkers:     getEnvInt("FANOUT_WORKERS", 4),
		FeedDefaultLimit:  getEnvInt("FEED_DEFAULT_LIMIT", 20),
		FanoutAppendDelay: getEnvDuration("FANOUT_APPEND_DELAY", 0),
		SeedDemoData:      getEnvBool("SEED_DEMO_DATA", false),
		SeedUsers:         getEnvInt("SEED_USERS", 25),
		SeedPosts:         getEnvInt("SEED_POSTS", 40),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d >= 0 {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
