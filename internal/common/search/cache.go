// internal/common/search/cache.go
package search

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/models"

	"github.com/redis/go-redis/v9"
)

// Cache stores real search results. Simulated results are never cached.
type Cache interface {
	Get(ctx context.Context, query string, n int) ([]models.SearchResult, bool)
	Set(ctx context.Context, query string, n int, results []models.SearchResult, ttl time.Duration)
}

const cacheKeyPrefix = "magnet:search:"

type RedisCache struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisCache(client *redis.Client, log logger.Logger) *RedisCache {
	return &RedisCache{client: client, logger: log}
}

func CacheKey(query string, n int) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(query))))
	return fmt.Sprintf("%s%d:%s", cacheKeyPrefix, n, hex.EncodeToString(sum[:]))
}

func (c *RedisCache) Get(ctx context.Context, query string, n int) ([]models.SearchResult, bool) {
	val, err := c.client.Get(ctx, CacheKey(query, n)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("search cache read failed", map[string]interface{}{
				"query": query,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var results []models.SearchResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *RedisCache) Set(ctx context.Context, query string, n int, results []models.SearchResult, ttl time.Duration) {
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, CacheKey(query, n), data, ttl).Err(); err != nil {
		c.logger.Warn("search cache write failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
	}
}
