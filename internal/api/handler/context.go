package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

const birthDateLayout = "2006-01-02"

// formAttachment turns a multipart file field into a domain attachment
// without reading the content. A missing field yields nil, which the
// validation layer reports with the proper message.
func formAttachment(c echo.Context, field string) *domain.Attachment {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return &domain.Attachment{
		Field:       field,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// parseBirthDate parses the wire date format; a malformed or empty value
// comes back as the zero time so the "Fecha requerida" rule fires.
func parseBirthDate(s string) time.Time {
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// statusFor maps a submission error to its HTTP status. The registration
// endpoint renders its own message envelope, so it cannot lean on the
// central error handler for the status.
func statusFor(err error) int {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	var uerr *domain.UpstreamError
	if errors.As(err, &uerr) {
		return uerr.Status
	}
	switch {
	case errors.Is(err, domain.ErrRegistrationClosed):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
