package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"reputation-desk/internal/alert"
	"reputation-desk/internal/cache"
	"reputation-desk/internal/cluster"
	"reputation-desk/internal/config"
	"reputation-desk/internal/db"
	"reputation-desk/internal/search"
	"reputation-desk/internal/source"
)

func main() {
	// Root context cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "[desk-server] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	// Source adapters
	adapters := []source.Adapter{
		source.NewNewsAPI(cfg.NewsAPIBaseURL, cfg.NewsAPIKey, httpClient),
		source.NewGoogleNews(cfg.GoogleNewsBaseURL, httpClient),
	}
	if cfg.NewsAPIKey == "" {
		logger.Println("newsapi key not configured, keyed adapter will return no articles")
	}

	// Optional Mongo-backed fetch cache
	var mongoClient *mongo.Client
	if cfg.MongoURI != "" {
		client, err := db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			logger.Fatalf("failed to connect to db: %v", err)
		}
		mongoClient = client

		store, err := cache.NewMongo(client.Database(cfg.MongoDBName), cfg.CacheTTL, logger)
		if err != nil {
			logger.Fatalf("failed to init fetch cache: %v", err)
		}
		for i, a := range adapters {
			adapters[i] = cache.Wrap(a, store)
		}
		logger.Printf("fetch cache enabled (ttl %v)", cfg.CacheTTL)
	}

	fetcher := source.NewFetcher(
		adapters,
		rate.NewLimiter(rate.Limit(cfg.RatePerSecond), len(adapters)),
		cfg.Timeout,
		logger,
	)

	// Optional RabbitMQ alert publisher
	var alerts search.AlertPublisher
	if cfg.RabbitURI != "" {
		publisher, err := alert.NewRabbitPublisher(
			cfg.RabbitURI,
			cfg.RabbitExchange,
			cfg.RabbitRoutingKey,
			logger,
		)
		if err != nil {
			logger.Fatalf("failed to init rabbit publisher: %v", err)
		}
		defer publisher.Close()
		alerts = publisher
		logger.Printf("alerting enabled (min score %.0f)", cfg.AlertMinScore)
	}

	svc := search.NewService(fetcher, cluster.NewEngine(), alerts, cfg.AlertMinScore, logger)
	handler := search.NewHandler(svc, logger)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: handler.Router(),
	}

	go func() {
		logger.Printf("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("HTTP server error: %v", err)
		}
	}()

	logger.Println("service started")

	// Block until we receive a signal / ctx cancelled
	<-ctx.Done()
	logger.Println("shutdown signal received, shutting down...")

	// Unified shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Graceful HTTP shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Printf("HTTP server shutdown error: %v", err)
	}

	// Graceful Mongo shutdown
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			logger.Printf("mongo disconnect error: %v", err)
		}
	}

	logger.Println("shutdown complete")
}
