package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fcamara/user-address-api/internal/api/metrics"
	"github.com/fcamara/user-address-api/internal/core/domain"
	"github.com/fcamara/user-address-api/internal/core/ports"
)

const cacheTTL = 24 * time.Hour

// PostalCache is a read-through Redis cache in front of a PostalGateway.
// Postal data changes rarely, so successful lookups are cached for cacheTTL.
// Unknown codes and cache failures are never cached; a cache failure
// degrades to a direct lookup.
// Key format: cep:<zip_code>
type PostalCache struct {
	client *redis.Client
	next   ports.PostalGateway
	log    zerolog.Logger
}

// NewPostalCache wraps next with a Redis cache.
func NewPostalCache(client *redis.Client, next ports.PostalGateway, log zerolog.Logger) *PostalCache {
	return &PostalCache{client: client, next: next, log: log}
}

// Lookup satisfies ports.PostalGateway.
func (c *PostalCache) Lookup(ctx context.Context, zipCode string) (*domain.PostalAddress, error) {
	key := "cep:" + zipCode

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached domain.PostalAddress
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.PostalCacheTotal.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		// Corrupt entry: fall through to the gateway and overwrite it.
		c.log.Warn().Str("zip_code", zipCode).Msg("corrupt postal cache entry")
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("zip_code", zipCode).Msg("postal cache read failed")
	}
	metrics.PostalCacheTotal.WithLabelValues("miss").Inc()

	result, err := c.next.Lookup(ctx, zipCode)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := c.client.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
			c.log.Warn().Err(err).Str("zip_code", zipCode).Msg("postal cache write failed")
		}
	}

	return result, nil
}
