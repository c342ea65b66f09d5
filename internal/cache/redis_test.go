package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airport/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatLockKey(t *testing.T) {
	assert.Equal(t, "lock:flight:7:seat:12C", SeatLockKey(7, 12, "C"))
	assert.NotEqual(t, SeatLockKey(7, 1, "A"), SeatLockKey(8, 1, "A"))
}

func TestFilteredKeys(t *testing.T) {
	assert.Equal(t, "cache:aircraft:1,2", AircraftKey("1,2"))
	assert.Equal(t, "cache:routes:JFK|KBP", RouteKey("JFK|KBP"))
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:0"}, time.Minute)
	require.NotNil(t, c)
	assert.Equal(t, time.Minute, c.ttl)
	assert.NoError(t, c.Invalidate(context.Background()))
	assert.NoError(t, c.Close())
}
