package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pjeseza-web/domain/model"
	"pjeseza-web/infrastructure/configuration"
	"pjeseza-web/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis using the configured address. It returns
// nil when no host is configured or the server is unreachable; the cache
// degrades to a pass-through in that case.
func NewRedisClient(cfg configuration.RedisClient) *redis.Client {
	if cfg.Host == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Username: cfg.Username,
		Password: cfg.Password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis unavailable, video info caching disabled")
		_ = client.Close()
		return nil
	}
	return client
}

// VideoInfoCache keeps resolved video metadata so repeated wizard starts on
// the same URL skip the backend round-trip. All methods are safe on a nil
// client.
type VideoInfoCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewVideoInfoCache(client *redis.Client, ttl time.Duration) *VideoInfoCache {
	return &VideoInfoCache{client: client, ttl: ttl}
}

func (c *VideoInfoCache) key(url string) string {
	return "video_info:" + url
}

// Get returns the cached metadata for url, or nil on miss or any error.
func (c *VideoInfoCache) Get(ctx context.Context, url string) *model.VideoInfo {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, c.key(url)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("Video info cache read failed")
		}
		return nil
	}
	var info model.VideoInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil
	}
	return &info
}

// Set stores the metadata with the configured TTL. Failures are logged and
// otherwise ignored.
func (c *VideoInfoCache) Set(ctx context.Context, url string, info model.VideoInfo) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(url), raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Video info cache write failed")
	}
}
