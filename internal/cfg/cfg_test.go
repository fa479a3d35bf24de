package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/catalog/pkg/e"
	"github.com/DRSN-tech/catalog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("USE_IN_MEMORY_STORAGE", "")
	t.Setenv("REDIS_ADDR", "")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, 5*time.Second, c.Http.ReadTimeout)
	assert.Equal(t, 3, c.Storage.ConnectAttempts)
	assert.Equal(t, int32(10), c.Storage.MaxConns)
	assert.False(t, c.Storage.UsePersistent())
	assert.False(t, c.Redis.Enabled())
	assert.Equal(t, 3*time.Minute, c.Redis.ProductTTL)
}

func TestLoad_PersistentSelection(t *testing.T) {
	tests := []struct {
		name        string
		databaseURL string
		inMemory    string
		want        bool
	}{
		{name: "no database url", databaseURL: "", inMemory: "", want: false},
		{name: "database url only", databaseURL: "postgres://u:p@localhost/db", inMemory: "", want: true},
		{name: "in-memory override", databaseURL: "postgres://u:p@localhost/db", inMemory: "true", want: false},
		{name: "override disabled", databaseURL: "postgres://u:p@localhost/db", inMemory: "false", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", tt.databaseURL)
			t.Setenv("USE_IN_MEMORY_STORAGE", tt.inMemory)

			c, err := Load(logger.NewNopLogger())
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Storage.UsePersistent())
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("HTTP_READ_TIMEOUT", "soon")
		_, err := Load(logger.NewNopLogger())
		require.Error(t, err)
	})

	t.Run("zero connect attempts", func(t *testing.T) {
		t.Setenv("DB_CONNECT_ATTEMPTS", "0")
		_, err := Load(logger.NewNopLogger())
		require.ErrorIs(t, err, e.ErrIncorrectEnvValue)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("USE_IN_MEMORY_STORAGE", "maybe")
		_, err := Load(logger.NewNopLogger())
		require.Error(t, err)
	})
}

func TestLoad_Redis(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PRODUCT_TTL", "30s")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)
	assert.True(t, c.Redis.Enabled())
	assert.Equal(t, 30*time.Second, c.Redis.ProductTTL)
}
