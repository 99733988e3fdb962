package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// message field is what the screens read; field names the offending input
// when a validation rule rejected it.
type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps known
// domain errors to deterministic status codes, logs unexpected errors, and
// renders a consistent JSON envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, errorResponse{Message: verr.Message, Field: verr.Field}
	}

	// Non-success responses from the upstream pass through with their own
	// status and detail.
	var uerr *domain.UpstreamError
	if errors.As(err, &uerr) {
		msg := uerr.Detail
		if msg == "" {
			msg = fmt.Sprintf("Error inesperado (HTTP %d)", uerr.Status)
		}
		return uerr.Status, errorResponse{Message: msg}
	}

	switch {
	case errors.Is(err, domain.ErrRegistrationClosed):
		msg := "Las inscripciones están cerradas"
		var werr *domain.WindowClosedError
		if errors.As(err, &werr) && werr.Notice != "" {
			msg = werr.Notice
		}
		return http.StatusForbidden, errorResponse{Message: msg}
	case errors.Is(err, domain.ErrInvalidManagerCode):
		return http.StatusNotFound, errorResponse{Message: "Código de dirigente no encontrado"}
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, errorResponse{Message: "Jugador no encontrado"}
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, errorResponse{Message: "Equipo no encontrado"}
	case errors.Is(err, domain.ErrManagerNotFound):
		return http.StatusNotFound, errorResponse{Message: "Dirigente no encontrado"}
	case errors.Is(err, domain.ErrRoundNotFound):
		return http.StatusNotFound, errorResponse{Message: "Fecha no encontrada"}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{Message: "No autorizado"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: "Acceso denegado"}
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict, errorResponse{Message: "Registro duplicado o en curso"}
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, errorResponse{Message: "Archivo demasiado grande"}
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusUnsupportedMediaType, errorResponse{Message: "Tipo de archivo no permitido"}
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, errorResponse{Message: "Tiempo de espera agotado. Intenta nuevamente."}
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway, errorResponse{Message: "Error al conectar con el servidor"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "Error interno del servidor"}
}
