package validation

import (
	"time"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

// CheckDraft runs every submission rule in its fixed order and returns the
// first failure, or nil when the draft may be sent upstream. The order is
// load-bearing: callers surface exactly one message, the first failing rule's.
func CheckDraft(d *domain.RegistrationDraft, now time.Time) error {
	if d.ManagerCode == "" || d.TeamName == "" {
		return domain.NewValidationError("codigoDirigente", MsgInvalidManagerCode)
	}
	if !ValidName(d.FirstName) {
		return domain.NewValidationError("firstName", MsgInvalidFirstName)
	}
	if !ValidName(d.LastName) {
		return domain.NewValidationError("lastName", MsgInvalidLastName)
	}
	if d.BirthDate.IsZero() {
		return domain.NewValidationError("dob", MsgBirthDateRequired)
	}
	age := domain.AgeOn(d.BirthDate, now)
	if age < domain.MinimumAge {
		return domain.NewValidationError("dob", MsgUnderMinimumAge)
	}
	if !ValidIdentification(d.Identification) {
		return domain.NewValidationError("identificacion", MsgInvalidIdentification)
	}
	if !ValidJerseyNumber(d.JerseyNumber) {
		return domain.NewValidationError("numjugador", MsgInvalidJerseyNumber)
	}
	if domain.RequiresGuardianAuthorization(age) && d.GuardianAuthorization == nil {
		return domain.NewValidationError("autorizacion", MsgGuardianRequired)
	}

	required := []*domain.Attachment{d.IDFront, d.IDBack, d.Selfie}
	fields := []string{"idImage", "idBackImage", "selfieImage"}
	for i, a := range required {
		if a == nil {
			return domain.NewValidationError(fields[i], MsgFileRequired)
		}
		if err := CheckImage(a); err != nil {
			return err
		}
	}
	if d.GuardianAuthorization != nil {
		if err := CheckDocument(d.GuardianAuthorization); err != nil {
			return err
		}
	}
	return nil
}
