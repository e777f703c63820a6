package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/modenord/lookcart/internal/catalog"
	"github.com/modenord/lookcart/internal/events"
	lookhttp "github.com/modenord/lookcart/internal/http"
	"github.com/modenord/lookcart/internal/observability"
	"github.com/modenord/lookcart/internal/session"
	"github.com/modenord/lookcart/internal/storage"
)

type Config struct {
	HTTPPort        string
	RedisAddr       string
	RedisPassword   string
	CatalogSeed     string
	KafkaBrokers    string
	KafkaTopic      string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogSeed:     getEnv("CATALOG_SEED", "catalog.yaml"),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "cart-events"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	logger, err := observability.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cat, err := catalog.LoadStatic(cfg.CatalogSeed)
	if err != nil {
		logger.Fatal("failed to load catalog seed", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.String("seed", cfg.CatalogSeed))

	// Redis is preferred for cart durability; without it carts live only
	// for the process lifetime, which the store degrades to gracefully.
	var kv storage.KV
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, carts will not survive restarts", zap.Error(err))
		} else {
			kv = storage.NewRedisStore(redisClient)
			logger.Info("redis connected", zap.String("addr", cfg.RedisAddr))
		}
		cancel()
	}
	if kv == nil {
		kv = storage.NewMemoryStore()
	}

	adapter := storage.NewAdapter(kv, logger)
	registry := session.NewRegistry(adapter, cat, logger)

	var publisher events.Publisher = events.Nop{}
	if cfg.KafkaBrokers != "" {
		publisher = events.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, logger)
		logger.Info("kafka event publisher enabled",
			zap.String("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}
	defer publisher.Close()

	router := lookhttp.NewRouter(registry, cat, publisher, logger, cfg.RequestTimeout)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("cart server listening", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down cart server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("cart server stopped")
}
