package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/config"
)

const cacheTTL = 24 * time.Hour

// CachedResult is an analysis result together with the tier that produced
// it, so a cache hit reports the same source as the original run.
type CachedResult struct {
	Result string `json:"result"`
	Source string `json:"source"`
}

// ResultCache memoizes analysis results keyed by action and content.
type ResultCache interface {
	Get(ctx context.Context, action Action, content string) (CachedResult, bool)
	Set(ctx context.Context, action Action, content string, res CachedResult)
	Close() error
}

// Cache is the Redis-backed ResultCache. The same entry analyzed twice
// should not cost two model calls. A nil Cache is a no-op.
type Cache struct {
	rdb *redis.Client
}

// NewCache connects to Redis, or returns nil when no URL is configured so
// the analyzer runs uncached.
func NewCache(cfg *config.Config) *Cache {
	if cfg.RedisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Warn("invalid redis url, analysis cache disabled", "error", err)
		return nil
	}
	return &Cache{rdb: redis.NewClient(opts)}
}

func cacheKey(action Action, content string) string {
	sum := sha256.Sum256([]byte(string(action) + ":" + content))
	return "analysis:" + hex.EncodeToString(sum[:])
}

func (c *Cache) Get(ctx context.Context, action Action, content string) (CachedResult, bool) {
	if c == nil {
		return CachedResult{}, false
	}
	val, err := c.rdb.Get(ctx, cacheKey(action, content)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("analysis cache read failed", "error", err)
		}
		return CachedResult{}, false
	}
	var res CachedResult
	if err := json.Unmarshal(val, &res); err != nil {
		// Unreadable value, treat as a miss.
		return CachedResult{}, false
	}
	return res, true
}

func (c *Cache) Set(ctx context.Context, action Action, content string, res CachedResult) {
	if c == nil {
		return
	}
	val, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(action, content), val, cacheTTL).Err(); err != nil {
		slog.Warn("analysis cache write failed", "error", err)
	}
}

// Close releases the Redis connection on shutdown.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
