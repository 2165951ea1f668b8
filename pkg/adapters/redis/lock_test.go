package redis_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/rewind/pkg/adapters/memory"
	"github.com/aretw0/rewind/pkg/adapters/redis"
	"github.com/aretw0/rewind/pkg/history"
	"github.com/aretw0/rewind/pkg/session"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *redis.Locker) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, redis.NewLocker(client, "test:").WithPollInterval(5 * time.Millisecond)
}

func TestLocker_LockUnlock(t *testing.T) {
	ctx := context.Background()
	mr, locker := setup(t)

	unlock, err := locker.Lock(ctx, "doc", time.Second)
	require.NoError(t, err)
	assert.True(t, mr.Exists("test:lock:doc"))

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists("test:lock:doc"))
}

func TestLocker_BlocksUntilReleased(t *testing.T) {
	ctx := context.Background()
	_, locker := setup(t)

	unlock, err := locker.Lock(ctx, "doc", time.Second)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(waitCtx, "doc", time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, unlock(ctx))
	unlock2, err := locker.Lock(ctx, "doc", time.Second)
	require.NoError(t, err)
	require.NoError(t, unlock2(ctx))
}

func TestLocker_NonPositivePollInterval(t *testing.T) {
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	locker := redis.NewLocker(client, "test:").WithPollInterval(0).WithPollInterval(-time.Second)

	unlock, err := locker.Lock(context.Background(), "doc", time.Second)
	require.NoError(t, err)
	defer func() { _ = unlock(context.Background()) }()

	// Contended: the default interval keeps polling until the deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NotPanics(t, func() {
		_, err = locker.Lock(ctx, "doc", time.Second)
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocker_ExpiredLockIsNotReleasedTwice(t *testing.T) {
	ctx := context.Background()
	mr, locker := setup(t)

	unlock, err := locker.Lock(ctx, "doc", time.Second)
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)
	other, err := locker.Lock(ctx, "doc", time.Second)
	require.NoError(t, err)

	assert.ErrorIs(t, unlock(ctx), redis.ErrLockNotHeld)
	assert.True(t, mr.Exists("test:lock:doc"), "the new holder keeps its lock")
	require.NoError(t, other(ctx))
}

func TestLocker_WithSessionManager(t *testing.T) {
	ctx := context.Background()
	mr, locker := setup(t)

	m := session.NewManager[int](memory.NewStore[int](), nil, session.WithLocker(locker))
	_, err := m.Open(ctx, "counter", 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			_, err := m.Dispatch(ctx, "counter", history.SetCommand(v))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	h, err := m.Get(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, 10, h.PastLen())
	assert.False(t, mr.Exists("test:lock:counter"))
}

func TestNewFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	locker, err := redis.NewFromURL("redis://"+mr.Addr()+"/0", "app:")
	require.NoError(t, err)
	defer locker.Close()

	unlock, err := locker.Lock(context.Background(), "x", time.Second)
	require.NoError(t, err)
	assert.True(t, mr.Exists("app:lock:x"))
	require.NoError(t, unlock(context.Background()))

	_, err = redis.NewFromURL("://bad", "")
	assert.Error(t, err)
}
