package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/redis/go-redis/v9"

	"agenda/internal/contact/handler"
	"agenda/internal/contact/service"
	"agenda/internal/contact/store"
	"agenda/internal/phone"
	"agenda/internal/platform/config"
	"agenda/internal/platform/httpserver"
	"agenda/internal/platform/logger"
	"agenda/internal/platform/metrics"
	platformmongo "agenda/internal/platform/mongo"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := platformmongo.Connect(connectCtx, cfg.MongoURL)
	cancel()
	if err != nil {
		log.Error("failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	log.Info("connected to MongoDB")

	var validator phone.Validator = phone.NewClient(cfg.PhoneAPIURL, cfg.APIKey, cfg.PhoneAPITimeout)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error("invalid redis URL", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		validator = phone.NewCachedValidator(validator, redisClient, cfg.PhoneCacheTTL)
		log.Info("phone validation cache enabled", "ttl", cfg.PhoneCacheTTL)
	}

	contacts := store.NewMongo(mongoClient, cfg.MongoDatabase)
	svc := service.New(contacts, validator, cfg.APIKey, log, metrics.New())
	router := handler.NewRouter(handler.New(svc, log), log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting agenda", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := mongoClient.Close(ctx); err != nil {
		log.Error("failed to close mongo connection", "error", err)
	}
}
