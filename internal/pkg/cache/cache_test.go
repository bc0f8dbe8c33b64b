package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClientDegradesGracefully(t *testing.T) {
	c := NewHelper(nil, "test:")
	ctx := context.Background()

	var dest string
	assert.ErrorIs(t, c.Get(ctx, "key", &dest), ErrCacheNotAvailable)
	assert.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	assert.NoError(t, c.Delete(ctx, "key"))
	assert.ErrorIs(t, c.HealthCheck(ctx), ErrCacheNotAvailable)
}

func TestGetOrFetch_FallsBackToFetch(t *testing.T) {
	c := NewHelper(nil, "test:")

	calls := 0
	var dest map[string]int
	err := c.GetOrFetch(context.Background(), "stats", &dest, time.Minute, func() (interface{}, error) {
		calls++
		return map[string]int{"total": 42}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 42, dest["total"])
}

func TestGetOrFetch_PropagatesFetchError(t *testing.T) {
	c := NewHelper(nil, "test:")

	var dest string
	err := c.GetOrFetch(context.Background(), "stats", &dest, time.Minute, func() (interface{}, error) {
		return nil, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
