package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDel(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "airports", `[{"iata":"GRU"}]`, time.Minute))

	got, err := c.Get(ctx, "airports")
	require.NoError(t, err)
	assert.Equal(t, `[{"iata":"GRU"}]`, got)

	require.NoError(t, c.Del(ctx, "airports"))

	_, err = c.Get(ctx, "airports")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "short", "v", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "forever", "v", 0))

	got, err := c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestPingAndCloseIgnoreNonRedis(t *testing.T) {
	c := NewMemoryCache()
	assert.NoError(t, Ping(context.Background(), c))
	assert.NoError(t, Close(c))
}
