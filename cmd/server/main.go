package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/weather-advisory-service/internal/adapter/http"
	"github.com/couchcryptid/weather-advisory-service/internal/adapter/kafka"
	"github.com/couchcryptid/weather-advisory-service/internal/adapter/lottie"
	"github.com/couchcryptid/weather-advisory-service/internal/adapter/openweather"
	"github.com/couchcryptid/weather-advisory-service/internal/config"
	"github.com/couchcryptid/weather-advisory-service/internal/dashboard"
	"github.com/couchcryptid/weather-advisory-service/internal/domain"
	"github.com/couchcryptid/weather-advisory-service/internal/observability"
)

// assetCacheSize covers every distinct animation URL in the asset tables.
const assetCacheSize = 64

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	var provider domain.WeatherProvider = openweather.NewClient(
		cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL, cfg.OpenWeatherTimeout, metrics, logger)
	if cfg.WeatherCacheTTL > 0 {
		provider = openweather.NewCachedProvider(provider, cfg.WeatherCacheSize, cfg.WeatherCacheTTL, nil, metrics)
		logger.Info("observation cache enabled", "size", cfg.WeatherCacheSize, "ttl", cfg.WeatherCacheTTL)
	}

	// Animation assets (feature-flagged via ASSETS_ENABLED).
	var assets domain.AnimationLoader
	if cfg.AssetsEnabled {
		assets = lottie.NewLoader(cfg.AssetTimeout, assetCacheSize, metrics, logger)
		logger.Info("animation assets enabled", "timeout", cfg.AssetTimeout)
	} else {
		logger.Info("animation assets disabled")
	}

	// Report publishing (feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS).
	var publisher dashboard.Publisher
	var writer *kafka.Writer
	if cfg.KafkaEnabled {
		writer = kafka.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("report publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaAdvisoryTopic)
	}

	svc := dashboard.New(provider, assets, publisher, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
