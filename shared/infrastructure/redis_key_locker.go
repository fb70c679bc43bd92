package infrastructure

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ordersaga/choreography/shared/saga"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ saga.KeyLocker = (*RedisKeyLocker)(nil)

const lockKeyPrefix = "saga:lock:"

// releaseScript deletes the key only while it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisKeyLocker serializes a key across replicas with SET NX PX.
// The TTL bounds how long a crashed holder blocks the key.
type RedisKeyLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	retry  time.Duration
	logger *zap.Logger
}

func NewRedisKeyLocker(client redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *RedisKeyLocker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisKeyLocker{
		client: client,
		ttl:    ttl,
		retry:  50 * time.Millisecond,
		logger: logger.With(zap.String("component", "redis-key-locker")),
	}
}

// NewRedisClient creates a client and checks connectivity
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

// Lock polls until the key is acquired or ctx is done
func (l *RedisKeyLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = lockKeyPrefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to acquire lock %s", key)
		}
		if ok {
			break
		}

		timer := time.NewTimer(l.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.Warn("failed to release lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}
