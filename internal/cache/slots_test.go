package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polarstudio/showroom-booking-backend/internal/booking/domain"
)

func testCache(t *testing.T) (*SlotsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := &SlotsCache{
		rdb: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
		ttl: 30 * time.Second,
	}
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestSlotsCache_MissThenHit(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx)
	assert.False(t, ok)

	c.Set(ctx, []domain.Booking{{ID: "b-1", Date: "2025-06-01", Time: "14:00"}})

	got, ok := c.Get(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "b-1", got[0].ID)
	assert.Equal(t, "2025-06-01", got[0].Date)
}

func TestSlotsCache_Invalidate(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.Set(ctx, []domain.Booking{{ID: "b-1"}})
	c.Invalidate(ctx)

	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestSlotsCache_TTLExpiry(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	c.Set(ctx, []domain.Booking{{ID: "b-1"}})
	mr.FastForward(time.Minute)

	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestSlotsCache_CorruptPayloadIsAMiss(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(slotsKey, "not json"))

	_, ok := c.Get(ctx)
	assert.False(t, ok)
}

func TestSlotsCache_EmptyListRoundTrips(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.Set(ctx, []domain.Booking{})

	got, ok := c.Get(ctx)
	require.True(t, ok)
	assert.Empty(t, got)
}
