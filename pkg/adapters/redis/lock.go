package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/rewind/pkg/ports"
	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
)

var (
	// ErrLockNotHeld is returned by the unlock function when the lock expired
	// or was taken over before release.
	ErrLockNotHeld = errors.New("distributed lock no longer held")
)

// DefaultPollInterval is how often Lock retries a held key.
const DefaultPollInterval = 100 * time.Millisecond

// unlockScript deletes the key only if it still carries our token.
const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

// Locker implements ports.DistributedLocker using Redis.
type Locker struct {
	client       backend.UniversalClient
	prefix       string
	pollInterval time.Duration
}

var _ ports.DistributedLocker = (*Locker)(nil)

// NewLocker creates a new Redis locker. Keys are stored as <prefix>lock:<document>.
func NewLocker(client backend.UniversalClient, prefix string) *Locker {
	return &Locker{
		client:       client,
		prefix:       prefix,
		pollInterval: DefaultPollInterval,
	}
}

// NewFromURL connects to the Redis server at url (redis://host:port/db).
func NewFromURL(url, prefix string) (*Locker, error) {
	opts, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewLocker(backend.NewClient(opts), prefix), nil
}

// WithPollInterval overrides DefaultPollInterval. Non-positive values are ignored.
func (l *Locker) WithPollInterval(d time.Duration) *Locker {
	if d > 0 {
		l.pollInterval = d
	}
	return l
}

// Close releases the underlying client.
func (l *Locker) Close() error {
	return l.client.Close()
}

// Lock acquires a distributed lock for the given key using Redis SET NX PX,
// polling until it succeeds or ctx is done.
func (l *Locker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	lockKey := l.prefix + "lock:" + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, lockKey, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("redis error acquiring lock: %w", err)
		}
		if ok {
			return func(ctx context.Context) error {
				n, err := l.client.Eval(ctx, unlockScript, []string{lockKey}, token).Int()
				if err != nil {
					return fmt.Errorf("redis error releasing lock: %w", err)
				}
				if n == 0 {
					return ErrLockNotHeld
				}
				return nil
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			// Retry...
		}
	}
}
