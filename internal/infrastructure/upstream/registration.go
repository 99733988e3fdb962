package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

const birthDateLayout = "2006-01-02"

// ValidateManagerCode resolves a manager code to its team name. An unknown
// code comes back as domain.ErrInvalidManagerCode so the form can show the
// inline hint without surfacing an error payload.
func (c *Client) ValidateManagerCode(ctx context.Context, code string) (string, error) {
	var out struct {
		Name string `json:"nombre"`
	}
	err := c.getJSON(ctx, c.lookup, "/api/equipos/validate/"+url.PathEscape(code), "", &out)
	if err != nil {
		var uerr *domain.UpstreamError
		if errors.As(err, &uerr) && uerr.Status == http.StatusNotFound {
			return "", domain.ErrInvalidManagerCode
		}
		return "", err
	}
	return out.Name, nil
}

// SubmitRegistration encodes the validated draft as a multipart form and
// posts it under the submission timeout.
func (c *Client) SubmitRegistration(ctx context.Context, draft *domain.RegistrationDraft) (*domain.Player, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"codigoDirigente", draft.ManagerCode},
		{"team", draft.TeamName},
		{"firstName", draft.FirstName},
		{"lastName", draft.LastName},
		{"dob", draft.BirthDate.Format(birthDateLayout)},
		{"identificacion", draft.Identification},
		{"numjugador", draft.JerseyNumber},
	}
	for _, f := range fields {
		if err := form.WriteField(f[0], f[1]); err != nil {
			return nil, err
		}
	}

	attachments := []*domain.Attachment{draft.IDFront, draft.IDBack, draft.Selfie, draft.GuardianAuthorization}
	for _, a := range attachments {
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

	req, err := c.newRequest(ctx, http.MethodPost, "/api/users", "", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.do(c.submit, req)
	if err != nil {
		return nil, err
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

// writeAttachment streams one file into the form, declaring its content type
// on the part so the upstream can run its own MIME check.
func writeAttachment(form *multipart.Writer, a *domain.Attachment) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, a.Field, a.Filename))
	header.Set("Content-Type", a.ContentType)

	part, err := form.CreatePart(header)
	if err != nil {
		return err
	}
	src, err := a.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	_, err = io.Copy(part, src)
	return err
}
