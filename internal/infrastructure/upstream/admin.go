package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

// notFoundAs converts an upstream 404 into the given domain sentinel and
// leaves every other error untouched.
func notFoundAs(err error, sentinel error) error {
	var uerr *domain.UpstreamError
	if errors.As(err, &uerr) && uerr.Status == http.StatusNotFound {
		return sentinel
	}
	return err
}

func (c *Client) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	in := map[string]string{"usuario": username, "password": password}
	var result domain.LoginResult
	err := c.sendJSON(ctx, c.lookup, http.MethodPost, "/api/dirigentes/login", "", in, &result)
	if err != nil {
		var uerr *domain.UpstreamError
		if errors.As(err, &uerr) && (uerr.Status == http.StatusUnauthorized || uerr.Status == http.StatusNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListManagers(ctx context.Context, credential string) ([]domain.Manager, error) {
	var managers []domain.Manager
	if err := c.getJSON(ctx, c.lookup, "/api/admin/dirigentes", credential, &managers); err != nil {
		return nil, err
	}
	return managers, nil
}

func (c *Client) CreateManager(ctx context.Context, credential string, m domain.Manager) (*domain.Manager, error) {
	var created domain.Manager
	if err := c.sendJSON(ctx, c.submit, http.MethodPost, "/api/admin/dirigentes", credential, m, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateManager(ctx context.Context, credential, id string, m domain.Manager) (*domain.Manager, error) {
	var updated domain.Manager
	err := c.sendJSON(ctx, c.submit, http.MethodPut, "/api/admin/dirigentes/"+url.PathEscape(id), credential, m, &updated)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrManagerNotFound)
	}
	return &updated, nil
}

func (c *Client) DeleteManager(ctx context.Context, credential, id string) error {
	err := c.sendJSON(ctx, c.lookup, http.MethodDelete, "/api/admin/dirigentes/"+url.PathEscape(id), credential, nil, nil)
	if err != nil {
		return notFoundAs(err, domain.ErrManagerNotFound)
	}
	return nil
}

func (c *Client) ListTeams(ctx context.Context, credential string) ([]domain.Team, error) {
	var teams []domain.Team
	if err := c.getJSON(ctx, c.lookup, "/api/admin/equipos", credential, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Client) CreateTeam(ctx context.Context, credential string, t domain.Team) (*domain.Team, error) {
	var created domain.Team
	if err := c.sendJSON(ctx, c.submit, http.MethodPost, "/api/admin/equipos", credential, t, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTeam(ctx context.Context, credential, id string, t domain.Team) (*domain.Team, error) {
	var updated domain.Team
	err := c.sendJSON(ctx, c.submit, http.MethodPut, "/api/admin/equipos/"+url.PathEscape(id), credential, t, &updated)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTeamNotFound)
	}
	return &updated, nil
}

func (c *Client) DeleteTeam(ctx context.Context, credential, id string) error {
	err := c.sendJSON(ctx, c.lookup, http.MethodDelete, "/api/admin/equipos/"+url.PathEscape(id), credential, nil, nil)
	if err != nil {
		return notFoundAs(err, domain.ErrTeamNotFound)
	}
	return nil
}
