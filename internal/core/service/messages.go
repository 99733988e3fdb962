package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

// Outcome texts shown to the registrant, in the UI's language.
const (
	msgRegistered      = "✅ Registrado correctamente"
	msgWindowClosed    = "Las inscripciones están cerradas"
	msgTimeout         = "Tiempo de espera agotado. Intenta nuevamente."
	msgCannotConnect   = "Error al conectar con el servidor"
	msgInFlight        = "Ya hay un registro en curso"
	msgUnauthorized    = "No autorizado"
	msgCodeNotFound    = "Código de dirigente no encontrado"
	msgFileTooLarge    = "Archivo demasiado grande"
	msgUnsupportedFile = "Tipo de archivo no permitido"
)

// SubmissionMessage renders the user-facing outcome text for a registration
// attempt. Failures carry the ❌ prefix, success the ✅ one.
func SubmissionMessage(err error) string {
	if err == nil {
		return msgRegistered
	}
	return "❌ " + failureText(err)
}

// failureText maps an error to its message. HTTP statuses follow a fixed
// table; 400, 409 and 500 pass the upstream detail through when present.
func failureText(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	if errors.Is(err, domain.ErrRegistrationClosed) {
		var werr *domain.WindowClosedError
		if errors.As(err, &werr) && werr.Notice != "" {
			return werr.Notice
		}
		return msgWindowClosed
	}
	if errors.Is(err, domain.ErrUpstreamTimeout) {
		return msgTimeout
	}
	if errors.Is(err, domain.ErrUpstreamUnavailable) {
		return msgCannotConnect
	}
	if errors.Is(err, domain.ErrSubmissionInFlight) {
		return msgInFlight
	}

	var uerr *domain.UpstreamError
	if errors.As(err, &uerr) {
		switch uerr.Status {
		case http.StatusBadRequest, http.StatusConflict, http.StatusInternalServerError:
			if uerr.Detail != "" {
				return uerr.Detail
			}
		case http.StatusUnauthorized:
			return msgUnauthorized
		case http.StatusNotFound:
			return msgCodeNotFound
		case http.StatusRequestEntityTooLarge:
			return msgFileTooLarge
		case http.StatusUnsupportedMediaType:
			return msgUnsupportedFile
		}
		return fmt.Sprintf("Error inesperado (HTTP %d)", uerr.Status)
	}
	return msgCannotConnect
}
