package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/docspot/docspot-api/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisSearchCacheKeyPrefix namespaces search result entries.
const RedisSearchCacheKeyPrefix = "search:results:"

// RedisSearchCache is a best-effort cache for assembled search responses.
// Every failure degrades to a cache miss; a search must never fail because
// Redis did.
type RedisSearchCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewRedisSearchCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (c *RedisSearchCache) Get(ctx context.Context, key string) (*dto.SearchProfessionalsResponse, bool) {
	payload, err := c.client.Get(ctx, RedisSearchCacheKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read search cache: %+v", err)
		}
		return nil, false
	}

	var res dto.SearchProfessionalsResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		c.log.Warnf("Failed to decode cached search result: %+v", err)
		return nil, false
	}
	return &res, true
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, res *dto.SearchProfessionalsResponse) {
	payload, err := json.Marshal(res)
	if err != nil {
		c.log.Warnf("Failed to encode search result for cache: %+v", err)
		return
	}
	if err := c.client.Set(ctx, RedisSearchCacheKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write search cache: %+v", err)
	}
}
