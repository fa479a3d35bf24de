package app

import (
	"context"
	"testing"
	"time"

	config "github.com/DRSN-tech/catalog/internal/cfg"
	"github.com/DRSN-tech/catalog/internal/storage"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Http: &config.HTTPConfig{Port: "0", ShutdownTimeout: time.Second},
		Storage: &config.StorageCfg{
			ConnectAttempts: 3,
			ConnectTimeout:  time.Second,
			RetryMaxDelay:   2 * time.Second,
			SeedTimeout:     5 * time.Second,
		},
		Redis: &config.RedisCfg{},
	}
}

func TestStartupTimeout(t *testing.T) {
	assert.Equal(t, 14*time.Second, startupTimeout(testConfig().Storage))
}

func TestNewApp_InMemoryWithoutRedis(t *testing.T) {
	a, err := NewApp(testConfig(), logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, storage.KindEphemeral, a.provider.Kind)
	assert.False(t, a.provider.Fallback)
	assert.NoError(t, a.closer.Close(context.Background()))
}

func TestInitCache_UnreachableRedis(t *testing.T) {
	cfg := testConfig()
	cfg.Redis = &config.RedisCfg{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
		Timeout:     100 * time.Millisecond,
	}

	cache := initCache(context.Background(), cfg.Redis, logger.NewNopLogger(), nil)
	assert.Nil(t, cache)
}
