package history

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey prefixes the keys used by RedisStore
const DefaultRedisKey = "weather:history"

// addScript appends ARGV[1] to the order list and marks it seen in one atomic
// step. The push runs before the set update so a failed push leaves no trace.
var addScript = redis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
	return 0
end
redis.call("RPUSH", KEYS[2], ARGV[1])
redis.call("SADD", KEYS[1], ARGV[1])
return 1
`)

// RedisStore shares the history between processes. A set guards uniqueness
// and a list keeps insertion order.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// Ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a store under key, or DefaultRedisKey when key is empty
func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) setKey() string  { return s.key + ":seen" }
func (s *RedisStore) listKey() string { return s.key + ":order" }

// Add records city once. The check and both writes run as one script, so the
// set and the list cannot disagree after a failure.
func (s *RedisStore) Add(ctx context.Context, city string) error {
	if err := addScript.Run(ctx, s.rdb, []string{s.setKey(), s.listKey()}, city).Err(); err != nil {
		return fmt.Errorf("history add %q: %w", city, err)
	}
	return nil
}

// List returns the entries in insertion order
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	entries, err := s.rdb.LRange(ctx, s.listKey(), 0, -1).Result()
	if err == redis.Nil {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}
	return entries, nil
}

// Clear removes both keys
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, s.setKey(), s.listKey()).Err()
}
