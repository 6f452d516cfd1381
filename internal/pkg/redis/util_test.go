package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	ctx := context.Background()
	c := NewCache(nil, time.Minute)
	assert.False(t, c.Enabled())

	require.NoError(t, c.SetMoods(ctx, 1, []byte(`[]`)))
	_, ok, err := c.GetMoods(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, c.InvalidateMoods(ctx, 1))

	require.NoError(t, c.RevokeToken(ctx, "sig", time.Minute))
	revoked, err := c.IsRevoked(ctx, "sig")
	require.NoError(t, err)
	assert.False(t, revoked)

	locked, err := c.TryLock(ctx, "k", "v", time.Second)
	require.NoError(t, err)
	assert.True(t, locked)
	c.UnLock(ctx, "k", "v")
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	assert.False(t, c.Enabled())
	v, err := c.GetValue(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestMoodListKey(t *testing.T) {
	assert.Equal(t, "mood:list:42", moodListKey(42))
}
