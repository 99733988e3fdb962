package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

func (c *Client) ListByManager(ctx context.Context, credential, managerID string) ([]domain.Player, error) {
	var players []domain.Player
	err := c.getJSON(ctx, c.lookup, "/api/dirigentes/"+url.PathEscape(managerID)+"/jugadores", credential, &players)
	if err != nil {
		var uerr *domain.UpstreamError
		if errors.As(err, &uerr) && uerr.Status == http.StatusNotFound {
			return nil, domain.ErrManagerNotFound
		}
		return nil, err
	}
	return players, nil
}

func (c *Client) PublicRoster(ctx context.Context, teamCode string) (*domain.TeamRoster, error) {
	var roster domain.TeamRoster
	err := c.getJSON(ctx, c.lookup, "/api/equipos/"+url.PathEscape(teamCode)+"/jugadores", "", &roster)
	if err != nil {
		var uerr *domain.UpstreamError
		if errors.As(err, &uerr) && uerr.Status == http.StatusNotFound {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return &roster, nil
}

func (c *Client) GetPlayer(ctx context.Context, credential, playerID string) (*domain.Player, error) {
	var player domain.Player
	err := c.getJSON(ctx, c.lookup, "/api/jugadores/"+url.PathEscape(playerID), credential, &player)
	if err != nil {
		var uerr *domain.UpstreamError
		if errors.As(err, &uerr) && uerr.Status == http.StatusNotFound {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// UpdatePlayer sends a multipart form carrying only the touched fields and
// any replacement files, the same envelope the creation call uses.
func (c *Client) UpdatePlayer(ctx context.Context, credential, playerID string, update ports.PlayerUpdate) (*domain.Player, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"firstName", update.FirstName},
		{"lastName", update.LastName},
		{"identificacion", update.Identification},
		{"numjugador", update.JerseyNumber},
	}
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		if err := form.WriteField(f[0], f[1]); err != nil {
			return nil, err
		}
	}
	if !update.BirthDate.IsZero() {
		if err := form.WriteField("dob", update.BirthDate.Format(birthDateLayout)); err != nil {
			return nil, err
		}
	}
	for _, a := range []*domain.Attachment{update.IDFront, update.IDBack, update.Selfie, update.GuardianAuthorization} {
		if a == nil {
			continue
		}
		if err := writeAttachment(form, a); err != nil {
			return nil, err
		}
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/api/jugadores/"+url.PathEscape(playerID), credential, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.do(c.submit, req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		defer resp.Body.Close()
		return nil, domain.ErrPlayerNotFound
	}
	if !success(resp.StatusCode) {
		return nil, statusError(resp)
	}
	defer resp.Body.Close()

	var player domain.Player
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (c *Client) DeletePlayer(ctx context.Context, credential, playerID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/jugadores/"+url.PathEscape(playerID), credential, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(c.lookup, req)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return domain.ErrPlayerNotFound
	}
	if !success(resp.StatusCode) {
		return statusError(resp)
	}
	resp.Body.Close()
	return nil
}
