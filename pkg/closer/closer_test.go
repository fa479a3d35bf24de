package closer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_LIFO(t *testing.T) {
	c := NewCloser(time.Second)

	var order []string
	for _, name := range []string{"postgres", "redis", "http"} {
		c.Add(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"http", "redis", "postgres"}, order)
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := NewCloser(time.Second)
	boom := errors.New("boom")

	c.Add("postgres", func(context.Context) error { return nil })
	c.Add("redis", func(context.Context) error { return boom })

	err := c.Close(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "redis: boom")
	assert.NotErrorIs(t, err, ErrInterrupted)
}

func TestCloser_CloseOnce(t *testing.T) {
	c := NewCloser(0)

	calls := 0
	c.Add("http", func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloser_ForcedAfterTimeout(t *testing.T) {
	c := NewCloser(50 * time.Millisecond)

	var (
		mu     sync.Mutex
		forced []string
	)
	release := make(chan struct{})
	c.Add("postgres", func(ctx context.Context) error {
		mu.Lock()
		forced = append(forced, "postgres")
		mu.Unlock()
		return nil
	})
	c.Add("http", func(ctx context.Context) error {
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	close(release)

	require.ErrorIs(t, err, ErrInterrupted)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"postgres"}, forced)
}
