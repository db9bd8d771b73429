package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheNotAvailable = errors.New("cache not available")
	ErrCacheNotFound     = errors.New("cache not found")
)

// CacheHelper provides prefix-scoped cache-aside operations. A nil client
// degrades gracefully: writes become no-ops and reads miss.
type CacheHelper struct {
	client *redis.Client
	prefix string

	// invalidateOnly suppresses Get/Set while keeping Delete and
	// InvalidatePattern live. Used inside database transactions, where rows
	// must not be cached before they commit but invalidations still have to
	// reach the shared client.
	invalidateOnly bool
}

func NewCacheHelper(client *redis.Client, prefix string) *CacheHelper {
	return &CacheHelper{
		client: client,
		prefix: prefix,
	}
}

func (c *CacheHelper) key(key string) string {
	return c.prefix + key
}

// Get retrieves and unmarshals cached data into dest.
func (c *CacheHelper) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil || c.invalidateOnly {
		return ErrCacheNotAvailable
	}

	data, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}
	return nil
}

// Set marshals and stores value under key with the given TTL.
func (c *CacheHelper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil || c.invalidateOnly {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	return c.client.Set(ctx, c.key(key), data, ttl).Err()
}

// Delete removes keys from the cache.
func (c *CacheHelper) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}

	cacheKeys := make([]string, len(keys))
	for i, key := range keys {
		cacheKeys[i] = c.key(key)
	}
	return c.client.Del(ctx, cacheKeys...).Err()
}

// InvalidatePattern removes every key matching the pattern. SCAN, not KEYS, so
// a large keyspace does not stall Redis.
func (c *CacheHelper) InvalidatePattern(ctx context.Context, pattern string) error {
	if c.client == nil {
		return nil
	}

	fullPattern := c.key(pattern)
	var cursor uint64
	var keys []string

	for {
		scanKeys, next, err := c.client.Scan(ctx, cursor, fullPattern, 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan error: %w", err)
		}
		keys = append(keys, scanKeys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// CacheManager bundles the cache helpers used by the user service.
type CacheManager struct {
	User  *CacheHelper
	Stats *CacheHelper
}

// TTLs for the two cached data classes. User lookups sit on the auth
// middleware hot path; stats back an expensive aggregate query.
const (
	UserCacheTTL  = 2 * time.Minute
	StatsCacheTTL = 5 * time.Minute
)

func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{
		User:  NewCacheHelper(client, "user:"),
		Stats: NewCacheHelper(client, "stats:"),
	}
}

// TransactionView returns a manager for use inside a database transaction:
// reads miss and writes are dropped, so uncommitted rows are never cached,
// while Delete/InvalidatePattern still hit the shared client.
func (cm *CacheManager) TransactionView() *CacheManager {
	return &CacheManager{
		User:  &CacheHelper{client: cm.User.client, prefix: cm.User.prefix, invalidateOnly: true},
		Stats: &CacheHelper{client: cm.Stats.client, prefix: cm.Stats.prefix, invalidateOnly: true},
	}
}

// HealthCheck verifies cache connectivity.
func (cm *CacheManager) HealthCheck(ctx context.Context) error {
	if cm.User.client == nil {
		return ErrCacheNotAvailable
	}
	if err := cm.User.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache health check failed: %w", err)
	}
	return nil
}

// InvalidateUser drops the cached copy of one user plus the stats aggregates
// that count them.
func (cm *CacheManager) InvalidateUser(ctx context.Context, userID string) {
	if err := cm.User.Delete(ctx, "id:"+userID); err != nil {
		return
	}
	_ = cm.Stats.InvalidatePattern(ctx, "users*")
}
