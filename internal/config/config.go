// Package config loads service settings from environment variables, plus an
// optional YAML file describing the event categories to process.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nostrmaps/location-etl/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Extraction settings.
	GeohashStrict bool
	H3Resolution  int

	// Category filtering. Categories is the full table (from CATEGORY_FILE or
	// the built-in defaults); Kinds is the union of kinds for the categories
	// enabled via CATEGORIES.
	Categories []domain.Category
	Kinds      domain.KindSet

	// Mapbox geocoding configuration.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int
}

// ExtractOptions derives the domain extraction options from the config.
func (c *Config) ExtractOptions() domain.ExtractOptions {
	mode := domain.GeohashLenient
	if c.GeohashStrict {
		mode = domain.GeohashStrict
	}
	return domain.ExtractOptions{GeohashMode: mode, H3Resolution: c.H3Resolution}
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parsePositiveDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	flushInterval, err := parsePositiveDuration("BATCH_FLUSH_INTERVAL", "500ms")
	if err != nil {
		return nil, err
	}

	mapboxTimeout, err := parsePositiveDuration("MAPBOX_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	batchSize, err := parsePositiveInt("BATCH_SIZE", 50)
	if err != nil {
		return nil, err
	}

	mapboxCacheSize, err := parsePositiveInt("MAPBOX_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	h3Resolution, err := parseH3Resolution()
	if err != nil {
		return nil, err
	}

	categories, kinds, err := loadCategoryConfig()
	if err != nil {
		return nil, err
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		mapboxEnabled = v == "true"
	}

	cfg := &Config{
		KafkaBrokers:       parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   envOrDefault("KAFKA_SOURCE_TOPIC", "raw-nostr-events"),
		KafkaSinkTopic:     envOrDefault("KAFKA_SINK_TOPIC", "location-events"),
		KafkaGroupID:       envOrDefault("KAFKA_GROUP_ID", "location-etl"),
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		GeohashStrict: os.Getenv("GEOHASH_STRICT") == "true",
		H3Resolution:  h3Resolution,
		Categories:    categories,
		Kinds:         kinds,

		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: mapboxCacheSize,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}

	return cfg, nil
}

// loadCategoryConfig resolves the category table (CATEGORY_FILE or defaults)
// and the enabled subset (CATEGORIES, comma-separated names; empty = all).
func loadCategoryConfig() ([]domain.Category, domain.KindSet, error) {
	categories := domain.DefaultCategories()
	if path := os.Getenv("CATEGORY_FILE"); path != "" {
		loaded, err := LoadCategories(path)
		if err != nil {
			return nil, nil, err
		}
		categories = loaded
	}

	enabled := categories
	if names := os.Getenv("CATEGORIES"); names != "" {
		byName := make(map[string]domain.Category, len(categories))
		for _, cat := range categories {
			byName[cat.Name] = cat
		}
		enabled = enabled[:0:0]
		for _, name := range strings.Split(names, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			cat, ok := byName[name]
			if !ok {
				return nil, nil, fmt.Errorf("CATEGORIES names unknown category %q", name)
			}
			enabled = append(enabled, cat)
		}
		if len(enabled) == 0 {
			return nil, nil, errors.New("CATEGORIES must name at least one category")
		}
	}

	return categories, domain.NewKindSet(enabled), nil
}

// parseH3Resolution reads H3_RESOLUTION (default 8). Valid values are 0-15,
// or -1 to disable the h3_cell output field.
func parseH3Resolution() (int, error) {
	s := os.Getenv("H3_RESOLUTION")
	if s == "" {
		return 8, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < -1 || n > 15 {
		return 0, errors.New("H3_RESOLUTION must be -1 (disabled) or 0-15")
	}
	return n, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
