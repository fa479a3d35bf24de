package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff(t *testing.T) {
	base, max := 100*time.Millisecond, time.Second

	assert.Equal(t, 100*time.Millisecond, backoff(base, max, 0))
	assert.Equal(t, 200*time.Millisecond, backoff(base, max, 1))
	assert.Equal(t, 800*time.Millisecond, backoff(base, max, 3))
	assert.Equal(t, time.Second, backoff(base, max, 4))
	assert.Equal(t, time.Second, backoff(base, max, 40))
}

func TestDurationWithRand(t *testing.T) {
	half := func() float64 { return 0.5 }

	assert.Equal(t, 125*time.Millisecond, DurationWithRand(100*time.Millisecond, 0.5, half))
	assert.Equal(t, 100*time.Millisecond, DurationWithRand(100*time.Millisecond, 0, half))
	assert.Equal(t, time.Duration(0), DurationWithRand(0, 0.5, half))
}

func TestExponentialBackoff_Bounds(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		d := ExponentialBackoff(50*time.Millisecond, 400*time.Millisecond, attempt, DefaultJitter)
		want := backoff(50*time.Millisecond, 400*time.Millisecond, attempt)

		assert.GreaterOrEqual(t, d, want)
		assert.LessOrEqual(t, d, want+want/2)
	}
}
