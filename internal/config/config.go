package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	DefaultCity     string

	// OpenWeatherMap provider configuration.
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenWeatherTimeout time.Duration
	WeatherCacheSize   int
	WeatherCacheTTL    time.Duration

	// Animation assets.
	AssetsEnabled bool
	AssetTimeout  time.Duration

	// Report publishing.
	KafkaBrokers       []string
	KafkaEnabled       bool
	KafkaAdvisoryTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	owmTimeout, err := parsePositiveDuration("OPENWEATHER_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	assetTimeout, err := parsePositiveDuration("ASSET_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(sharedcfg.EnvOrDefault("WEATHER_CACHE_TTL", "1m"))
	if err != nil || cacheTTL < 0 {
		return nil, errors.New("invalid WEATHER_CACHE_TTL")
	}

	cacheSize, err := parseCacheSize()
	if err != nil {
		return nil, err
	}

	brokers := os.Getenv("KAFKA_BROKERS")
	kafkaEnabled := brokers != ""
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		DefaultCity:     sharedcfg.EnvOrDefault("DEFAULT_CITY", "Delhi, IN"),

		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: sharedcfg.EnvOrDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
		OpenWeatherTimeout: owmTimeout,
		WeatherCacheSize:   cacheSize,
		WeatherCacheTTL:    cacheTTL,

		AssetsEnabled: sharedcfg.EnvOrDefault("ASSETS_ENABLED", "true") == "true",
		AssetTimeout:  assetTimeout,

		KafkaEnabled:       kafkaEnabled,
		KafkaAdvisoryTopic: sharedcfg.EnvOrDefault("KAFKA_ADVISORY_TOPIC", "weather-advisories"),
	}
	if brokers != "" {
		cfg.KafkaBrokers = sharedcfg.ParseBrokers(brokers)
	}

	if cfg.OpenWeatherAPIKey == "" {
		return nil, errors.New("OPENWEATHER_API_KEY is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is not set")
	}
	if cfg.KafkaEnabled && cfg.KafkaAdvisoryTopic == "" {
		return nil, errors.New("KAFKA_ADVISORY_TOPIC is required")
	}

	return cfg, nil
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseCacheSize() (int, error) {
	s := os.Getenv("WEATHER_CACHE_SIZE")
	if s == "" {
		return 100, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid WEATHER_CACHE_SIZE")
	}
	return n, nil
}
