package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

func (c *Client) List(ctx context.Context) ([]domain.FixtureRound, error) {
	var rounds []domain.FixtureRound
	if err := c.getJSON(ctx, c.lookup, "/api/fixture", "", &rounds); err != nil {
		return nil, err
	}
	return rounds, nil
}

func (c *Client) Create(ctx context.Context, credential string, round *domain.FixtureRound) (*domain.FixtureRound, error) {
	var created domain.FixtureRound
	if err := c.sendJSON(ctx, c.submit, http.MethodPost, "/api/fixture", credential, round, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) Update(ctx context.Context, credential, id string, round *domain.FixtureRound) (*domain.FixtureRound, error) {
	var updated domain.FixtureRound
	err := c.sendJSON(ctx, c.submit, http.MethodPut, "/api/fixture/"+url.PathEscape(id), credential, round, &updated)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrRoundNotFound)
	}
	return &updated, nil
}

func (c *Client) Delete(ctx context.Context, credential, id string) error {
	err := c.sendJSON(ctx, c.lookup, http.MethodDelete, "/api/fixture/"+url.PathEscape(id), credential, nil, nil)
	if err != nil {
		return notFoundAs(err, domain.ErrRoundNotFound)
	}
	return nil
}
