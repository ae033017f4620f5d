package cart

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces cart keys in Redis.
const KeyPrefix = "cart:"

// KV is the subset of *redis.Client the cart needs.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStorage keeps the cart under cart:{browserID}. Concurrent writers are last-writer-wins.
type RedisStorage struct {
	client KV
	key    string
	ttl    time.Duration
}

func NewRedisStorage(client KV, browserID string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, key: KeyPrefix + browserID, ttl: ttl}
}

// Key returns the Redis key this storage reads and writes.
func (s *RedisStorage) Key() string {
	return s.key
}

func (s *RedisStorage) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoCart
	}
	if err != nil {
		return nil, errors.Wrap(ErrStorage, err.Error())
	}
	return data, nil
}

func (s *RedisStorage) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return errors.Wrap(ErrStorage, err.Error())
	}
	return nil
}
