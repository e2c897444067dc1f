package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/canteen-scheduler/internal/logger"
)

var (
	_ reservation.Locker = (*RedisLocker)(nil)
	_ reservation.Locker = (*LocalLocker)(nil)
)

func newRedisLocker(t *testing.T, wait time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisLocker(rdb, 5*time.Second, wait, logger.Nop()), mr
}

func TestRedisLocker_Exclusive(t *testing.T) {
	ctx := context.Background()
	l, mr := newRedisLocker(t, 50*time.Millisecond)

	unlock, err := l.Lock(ctx, "admission:c1:2026-03-10")
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+"admission:c1:2026-03-10"))

	_, err = l.Lock(ctx, "admission:c1:2026-03-10")
	assert.ErrorIs(t, err, ErrNotAcquired)

	other, err := l.Lock(ctx, "admission:c1:2026-03-11")
	require.NoError(t, err)
	other()

	unlock()
	assert.False(t, mr.Exists(keyPrefix+"admission:c1:2026-03-10"))

	again, err := l.Lock(ctx, "admission:c1:2026-03-10")
	require.NoError(t, err)
	again()
}

func TestRedisLocker_ReleaseKeepsForeignToken(t *testing.T) {
	ctx := context.Background()
	l, mr := newRedisLocker(t, 0)

	unlock, err := l.Lock(ctx, "k")
	require.NoError(t, err)

	// our lease expired and someone else took the key
	require.NoError(t, mr.Set(keyPrefix+"k", "someone-else"))
	unlock()

	got, err := mr.Get(keyPrefix + "k")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLocker_WaitsForRelease(t *testing.T) {
	ctx := context.Background()
	l, _ := newRedisLocker(t, 2*time.Second)

	unlock, err := l.Lock(ctx, "k")
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		unlock()
	}()

	second, err := l.Lock(ctx, "k")
	require.NoError(t, err)
	second()
}

func TestLocalLocker_SerializesSameKey(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLocker(time.Second)

	var (
		inside  atomic.Int32
		maxSeen atomic.Int32
		wg      sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, "k")
			if !assert.NoError(t, err) {
				return
			}
			n := inside.Add(1)
			if n > maxSeen.Load() {
				maxSeen.Store(n)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
	assert.Empty(t, l.slots)
}

func TestLocalLocker_Timeout(t *testing.T) {
	ctx := context.Background()
	l := NewLocalLocker(20 * time.Millisecond)

	unlock, err := l.Lock(ctx, "k")
	require.NoError(t, err)

	_, err = l.Lock(ctx, "k")
	assert.ErrorIs(t, err, ErrNotAcquired)

	free, err := l.Lock(ctx, "other")
	require.NoError(t, err)
	free()

	unlock()
	unlock() // second call is a no-op
	assert.Empty(t, l.slots)
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	l := NewLocalLocker(time.Second)
	unlock, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
