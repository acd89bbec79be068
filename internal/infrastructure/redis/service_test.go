package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	svc := NewService(context.Background(), m.Addr(), "")
	require.NotNil(t, svc)
	t.Cleanup(func() { _ = svc.Close() })
	return svc, m
}

func TestNewServiceUnconfigured(t *testing.T) {
	assert.Nil(t, NewService(context.Background(), "", ""))
}

func TestIncr(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := svc.Incr(ctx, "ratelimit:chat:10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}
	assert.Equal(t, time.Minute, m.TTL("ratelimit:chat:10.0.0.1"))
}

func TestIncrKeepsRunningWindow(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	_, err := svc.Incr(ctx, "ratelimit:chat:10.0.0.1", time.Minute)
	require.NoError(t, err)
	m.FastForward(40 * time.Second)

	_, err = svc.Incr(ctx, "ratelimit:chat:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Second, m.TTL("ratelimit:chat:10.0.0.1"))
}

func TestIncrRepairsKeyWithoutExpiry(t *testing.T) {
	svc, m := newTestService(t)

	// a counter whose first EXPIRE never landed
	require.NoError(t, m.Set("ratelimit:chat:10.0.0.1", "7"))
	require.Zero(t, m.TTL("ratelimit:chat:10.0.0.1"))

	count, err := svc.Incr(context.Background(), "ratelimit:chat:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(8), count)
	assert.Equal(t, time.Minute, m.TTL("ratelimit:chat:10.0.0.1"))

	m.FastForward(time.Minute + time.Second)
	assert.False(t, m.Exists("ratelimit:chat:10.0.0.1"))
}

func TestIncrStoreDown(t *testing.T) {
	svc, m := newTestService(t)
	m.Close()

	_, err := svc.Incr(context.Background(), "ratelimit:chat:10.0.0.1", time.Minute)
	assert.Error(t, err)
}
