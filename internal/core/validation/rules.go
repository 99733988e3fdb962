package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

// User-facing rule messages, surfaced exactly as the form shows them.
const (
	MsgInvalidManagerCode    = "Código de dirigente inválido"
	MsgInvalidFirstName      = "Nombres inválidos"
	MsgInvalidLastName       = "Apellidos inválidos"
	MsgBirthDateRequired     = "Fecha requerida"
	MsgUnderMinimumAge       = "No se permiten menores de 14 años"
	MsgInvalidIdentification = "Identificación inválida"
	MsgInvalidJerseyNumber   = "Número inválido (1-99)"
	MsgGuardianRequired      = "Autorización requerida (14-17 años)"
	MsgFileRequired          = "Archivo requerido"
	MsgImageOnly             = "Solo se permiten imágenes"
	MsgDocumentOnly          = "Solo se permiten imágenes o PDF"
	MsgFileTooLarge          = "El archivo supera los 10 MB"
)

// MaxFileSize is the upload ceiling for every attachment.
const MaxFileSize = 10 << 20

var (
	nameAllowed     = regexp.MustCompile(`[^A-Za-zÁÉÍÓÚáéíóúÑñ\s]`)
	namePattern     = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑ ]+$`)
	identAllowed    = regexp.MustCompile(`[^A-Z0-9\-]`)
	identPattern    = regexp.MustCompile(`^[A-Z0-9\-]+$`)
	innerWhitespace = regexp.MustCompile(`\s+`)
)

// SanitizeName strips characters outside the Spanish letter set, collapses
// runs of whitespace to a single space, trims, and uppercases. Applied on
// every edit, so it must be idempotent.
func SanitizeName(s string) string {
	s = nameAllowed.ReplaceAllString(s, "")
	s = innerWhitespace.ReplaceAllString(s, " ")
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidName reports whether a sanitized name is acceptable.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// SanitizeIdentification uppercases and strips anything that is not a
// letter, digit, or hyphen.
func SanitizeIdentification(s string) string {
	return identAllowed.ReplaceAllString(strings.ToUpper(s), "")
}

// ValidIdentification reports whether a sanitized identification string is
// acceptable.
func ValidIdentification(s string) bool {
	return identPattern.MatchString(s)
}

// ValidJerseyNumber accepts 1 through 99 inclusive. The submitted value is
// checked as-is: an out-of-range number must be rejected, never shortened
// into a different valid one.
func ValidJerseyNumber(s string) bool {
	if s == "" || len(s) > 2 {
		return false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 99
}

// ValidImageType reports whether the declared content type is an image.
func ValidImageType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// ValidDocumentType accepts images and PDF, the set allowed for the
// guardian-authorization upload.
func ValidDocumentType(contentType string) bool {
	return ValidImageType(contentType) || contentType == "application/pdf"
}

// CheckImage rejects a photo attachment that is not an image or is over the
// size limit. The returned error names the offending field.
func CheckImage(a *domain.Attachment) error {
	if !ValidImageType(a.ContentType) {
		return domain.NewValidationError(a.Field, MsgImageOnly)
	}
	if a.Size > MaxFileSize {
		return domain.NewValidationError(a.Field, MsgFileTooLarge)
	}
	return nil
}

// CheckDocument is the looser variant used for the guardian authorization.
func CheckDocument(a *domain.Attachment) error {
	if !ValidDocumentType(a.ContentType) {
		return domain.NewValidationError(a.Field, MsgDocumentOnly)
	}
	if a.Size > MaxFileSize {
		return domain.NewValidationError(a.Field, MsgFileTooLarge)
	}
	return nil
}
