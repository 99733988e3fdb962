package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

const fixtureSnapshotKey = "fixture:snapshot"

// FixtureCache keeps a short-lived snapshot of the published schedule, the
// one read every visitor hits. Writes go straight through and drop the
// snapshot so the next read sees fresh data.
type FixtureCache struct {
	next   ports.FixtureGateway
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger zerolog.Logger
}

func NewFixtureCache(next ports.FixtureGateway, client *redis.Client, ttl time.Duration, logger zerolog.Logger) *FixtureCache {
	return &FixtureCache{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *FixtureCache) List(ctx context.Context) ([]domain.FixtureRound, error) {
	if raw, err := c.client.Get(ctx, fixtureSnapshotKey).Bytes(); err == nil {
		var rounds []domain.FixtureRound
		if err := json.Unmarshal(raw, &rounds); err == nil {
			return rounds, nil
		}
		c.logger.Debug().Err(err).Msg("fixture snapshot corrupt, refetching")
	}

	v, err, _ := c.group.Do(fixtureSnapshotKey, func() (any, error) {
		rounds, err := c.next.List(ctx)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(rounds); err == nil {
			if err := c.client.Set(ctx, fixtureSnapshotKey, raw, c.ttl).Err(); err != nil {
				c.logger.Debug().Err(err).Msg("fixture snapshot write failed")
			}
		}
		return rounds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.FixtureRound), nil
}

func (c *FixtureCache) Create(ctx context.Context, credential string, round *domain.FixtureRound) (*domain.FixtureRound, error) {
	created, err := c.next.Create(ctx, credential, round)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return created, nil
}

func (c *FixtureCache) Update(ctx context.Context, credential, id string, round *domain.FixtureRound) (*domain.FixtureRound, error) {
	updated, err := c.next.Update(ctx, credential, id, round)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return updated, nil
}

func (c *FixtureCache) Delete(ctx context.Context, credential, id string) error {
	if err := c.next.Delete(ctx, credential, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *FixtureCache) invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, fixtureSnapshotKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("fixture snapshot invalidation failed")
	}
}
