package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr        string
	NewsAPIKey        string // empty disables the keyed adapter
	NewsAPIBaseURL    string
	GoogleNewsBaseURL string
	Timeout           time.Duration
	RatePerSecond     float64
	MongoURI          string // empty disables the fetch cache
	MongoDBName       string
	CacheTTL          time.Duration
	RabbitURI         string // empty disables alerting
	RabbitExchange    string
	RabbitRoutingKey  string
	AlertMinScore     float64
}

const (
	ListenAddr          = "LISTEN_ADDR"
	NewsAPIKey          = "NEWSAPI_KEY"
	NewsAPIBaseURL      = "NEWSAPI_BASE_URL"
	GoogleNewsBaseURL   = "GOOGLE_NEWS_BASE_URL"
	Timeout             = "TIMEOUT"
	RatePerSecond       = "RATE_PER_SECOND"
	MongoURIEnv         = "MONGO_URI"
	MongoDBName         = "MONGO_DB_NAME"
	CacheTTL            = "CACHE_TTL"
	RabbitURIEnv        = "RABBIT_URI"
	RabbitExchangeEnv   = "RABBIT_EXCHANGE"
	RabbitRoutingKeyEnv = "RABBIT_ROUTING_KEY"
	AlertMinScore       = "ALERT_MIN_SCORE"
)

func FromEnv() (Config, error) {
	var cfg Config

	cfg.ListenAddr = getEnv(ListenAddr, ":8080")
	cfg.NewsAPIKey = getEnv(NewsAPIKey, "")
	cfg.NewsAPIBaseURL = getEnv(NewsAPIBaseURL, "https://newsapi.org")
	cfg.GoogleNewsBaseURL = getEnv(GoogleNewsBaseURL, "https://news.google.com")
	cfg.MongoURI = getEnv(MongoURIEnv, "")
	cfg.MongoDBName = getEnv(MongoDBName, "reputationdesk")
	cfg.RabbitURI = getEnv(RabbitURIEnv, "")
	cfg.RabbitExchange = getEnv(RabbitExchangeEnv, "reputation.alerts")
	cfg.RabbitRoutingKey = getEnv(RabbitRoutingKeyEnv, "scandal.detected")

	var err error
	timeoutStr := getEnv(Timeout, "10s")
	if cfg.Timeout, err = time.ParseDuration(timeoutStr); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", Timeout, err)
	}
	cacheTTLStr := getEnv(CacheTTL, "15m")
	if cfg.CacheTTL, err = time.ParseDuration(cacheTTLStr); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", CacheTTL, err)
	}
	if cfg.RatePerSecond, err = getEnvFloat(RatePerSecond, 5); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", RatePerSecond, err)
	}
	if cfg.AlertMinScore, err = getEnvFloat(AlertMinScore, 85); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", AlertMinScore, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}
