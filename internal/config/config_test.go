package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nostrmaps/location-etl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	defaultBroker   = "localhost:9092"
	testMapboxToken = "pk.test-token"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{defaultBroker}, cfg.KafkaBrokers)
	assert.Equal(t, "raw-nostr-events", cfg.KafkaSourceTopic)
	assert.Equal(t, "location-events", cfg.KafkaSinkTopic)
	assert.Equal(t, "location-etl", cfg.KafkaGroupID)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchFlushInterval)
	assert.False(t, cfg.GeohashStrict)
	assert.Equal(t, 8, cfg.H3Resolution)
	assert.Equal(t, domain.DefaultCategories(), cfg.Categories)
	assert.True(t, cfg.Kinds.Contains(31922))
	assert.True(t, cfg.Kinds.Contains(1))
	assert.False(t, cfg.Kinds.Contains(7))
	assert.False(t, cfg.MapboxEnabled)
	assert.Empty(t, cfg.MapboxToken)
	assert.Equal(t, 5*time.Second, cfg.MapboxTimeout)
	assert.Equal(t, 1000, cfg.MapboxCacheSize)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SOURCE_TOPIC", "custom-source")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BATCH_SIZE", "100")
	t.Setenv("BATCH_FLUSH_INTERVAL", "1s")
	t.Setenv("GEOHASH_STRICT", "true")
	t.Setenv("H3_RESOLUTION", "10")
	t.Setenv("MAPBOX_TOKEN", testMapboxToken)
	t.Setenv("MAPBOX_TIMEOUT", "10s")
	t.Setenv("MAPBOX_CACHE_SIZE", "500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-source", cfg.KafkaSourceTopic)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Equal(t, 1*time.Second, cfg.BatchFlushInterval)
	assert.True(t, cfg.GeohashStrict)
	assert.Equal(t, 10, cfg.H3Resolution)
	assert.True(t, cfg.MapboxEnabled)
	assert.Equal(t, testMapboxToken, cfg.MapboxToken)
	assert.Equal(t, 10*time.Second, cfg.MapboxTimeout)
	assert.Equal(t, 500, cfg.MapboxCacheSize)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidH3Resolution(t *testing.T) {
	t.Setenv("H3_RESOLUTION", "16")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "H3_RESOLUTION")
}

func TestLoad_DisabledH3Resolution(t *testing.T) {
	t.Setenv("H3_RESOLUTION", "-1")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.H3Resolution)
	assert.Equal(t, -1, cfg.ExtractOptions().H3Resolution)
}

func TestLoad_CategorySubset(t *testing.T) {
	t.Setenv("CATEGORIES", "calendar, notes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Kinds.Contains(31922))
	assert.True(t, cfg.Kinds.Contains(1))
	assert.False(t, cfg.Kinds.Contains(30402))
}

func TestLoad_UnknownCategory(t *testing.T) {
	t.Setenv("CATEGORIES", "weather")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weather")
}

func TestLoad_MapboxEnabledWithoutToken(t *testing.T) {
	t.Setenv("MAPBOX_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAPBOX_TOKEN")
}

func TestExtractOptions_GeohashMode(t *testing.T) {
	cfg := &Config{GeohashStrict: true, H3Resolution: 8}
	assert.Equal(t, domain.GeohashStrict, cfg.ExtractOptions().GeohashMode)

	cfg.GeohashStrict = false
	assert.Equal(t, domain.GeohashLenient, cfg.ExtractOptions().GeohashMode)
}

func TestLoadCategories(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "categories.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, `
categories:
  - name: calendar
    kinds: [31922, 31923]
  - name: notes
    kinds: [1]
`)
		categories, err := LoadCategories(path)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "calendar", categories[0].Name)
		assert.Equal(t, []int{31922, 31923}, categories[0].Kinds)
	})

	t.Run("used by Load via CATEGORY_FILE", func(t *testing.T) {
		path := writeFile(t, `
categories:
  - name: markets
    kinds: [30017, 30018]
`)
		t.Setenv("CATEGORY_FILE", path)

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Kinds.Contains(30017))
		assert.False(t, cfg.Kinds.Contains(1))
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "categories: []\n")
		_, err := LoadCategories(path)
		assert.ErrorIs(t, err, ErrNoCategories)
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeFile(t, "categories:\n  - kinds: [1]\n")
		_, err := LoadCategories(path)
		assert.ErrorIs(t, err, ErrCategoryMissingName)
	})

	t.Run("no kinds", func(t *testing.T) {
		path := writeFile(t, "categories:\n  - name: empty\n")
		_, err := LoadCategories(path)
		assert.ErrorIs(t, err, ErrCategoryNoKinds)
	})

	t.Run("negative kind", func(t *testing.T) {
		path := writeFile(t, "categories:\n  - name: bad\n    kinds: [-5]\n")
		_, err := LoadCategories(path)
		assert.ErrorIs(t, err, ErrCategoryBadKind)
	})

	t.Run("duplicate names", func(t *testing.T) {
		path := writeFile(t, `
categories:
  - name: notes
    kinds: [1]
  - name: notes
    kinds: [2]
`)
		_, err := LoadCategories(path)
		assert.ErrorIs(t, err, ErrDuplicateCategory)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCategories(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
