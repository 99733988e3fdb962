package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

const managerCodeKeyPrefix = "lookup:manager:"

// LookupCache wraps the registration gateway with a short-TTL Redis cache
// for manager-code lookups. Concurrent lookups for the same code are
// coalesced into one upstream call. Only successful resolutions are cached,
// so failure behaviour is identical to the uncached gateway.
type LookupCache struct {
	next   ports.RegistrationGateway
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger zerolog.Logger
}

func NewLookupCache(next ports.RegistrationGateway, client *redis.Client, ttl time.Duration, logger zerolog.Logger) *LookupCache {
	return &LookupCache{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *LookupCache) ValidateManagerCode(ctx context.Context, code string) (string, error) {
	key := managerCodeKeyPrefix + code
	if name, err := c.client.Get(ctx, key).Result(); err == nil {
		return name, nil
	} else if err != redis.Nil {
		c.logger.Debug().Err(err).Msg("lookup cache read failed, going upstream")
	}

	v, err, _ := c.group.Do(code, func() (any, error) {
		name, err := c.next.ValidateManagerCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if err := c.client.Set(ctx, key, name, c.ttl).Err(); err != nil {
			c.logger.Debug().Err(err).Msg("lookup cache write failed")
		}
		return name, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// SubmitRegistration is never cached.
func (c *LookupCache) SubmitRegistration(ctx context.Context, draft *domain.RegistrationDraft) (*domain.Player, error) {
	return c.next.SubmitRegistration(ctx, draft)
}
