package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

var checkNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func validDraft() *domain.RegistrationDraft {
	return &domain.RegistrationDraft{
		ManagerCode:    "AB12",
		TeamName:       "TIGRES FC",
		FirstName:      "JOSE MARIA",
		LastName:       "PEREZ",
		BirthDate:      time.Date(2000, time.January, 10, 0, 0, 0, 0, time.UTC),
		Identification: "1712345678",
		JerseyNumber:   "10",
		IDFront:        &domain.Attachment{Field: "idImage", ContentType: "image/jpeg", Size: 100},
		IDBack:         &domain.Attachment{Field: "idBackImage", ContentType: "image/jpeg", Size: 100},
		Selfie:         &domain.Attachment{Field: "selfieImage", ContentType: "image/png", Size: 100},
	}
}

func assertFails(t *testing.T, d *domain.RegistrationDraft, field, message string) {
	t.Helper()
	err := CheckDraft(d, checkNow)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Field != field || verr.Message != message {
		t.Errorf("got %q/%q, want %q/%q", verr.Field, verr.Message, field, message)
	}
}

func TestCheckDraftValid(t *testing.T) {
	if err := CheckDraft(validDraft(), checkNow); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckDraftOrder(t *testing.T) {
	t.Run("unresolved manager code fails first", func(t *testing.T) {
		d := validDraft()
		d.TeamName = ""
		d.FirstName = ""
		assertFails(t, d, "codigoDirigente", MsgInvalidManagerCode)
	})

	t.Run("first name before last name", func(t *testing.T) {
		d := validDraft()
		d.FirstName = ""
		d.LastName = ""
		assertFails(t, d, "firstName", MsgInvalidFirstName)
	})

	t.Run("birth date before identification", func(t *testing.T) {
		d := validDraft()
		d.BirthDate = time.Time{}
		d.Identification = ""
		assertFails(t, d, "dob", MsgBirthDateRequired)
	})
}

func TestCheckDraftAgeGates(t *testing.T) {
	t.Run("under fourteen rejected regardless of attachments", func(t *testing.T) {
		d := validDraft()
		d.BirthDate = time.Date(2012, time.June, 16, 0, 0, 0, 0, time.UTC)
		d.GuardianAuthorization = &domain.Attachment{Field: "autorizacion", ContentType: "application/pdf", Size: 10}
		assertFails(t, d, "dob", MsgUnderMinimumAge)
	})

	t.Run("exactly fourteen today requires authorization", func(t *testing.T) {
		d := validDraft()
		d.BirthDate = time.Date(2011, time.June, 15, 0, 0, 0, 0, time.UTC)
		assertFails(t, d, "autorizacion", MsgGuardianRequired)
	})

	t.Run("seventeen with authorization passes", func(t *testing.T) {
		d := validDraft()
		d.BirthDate = time.Date(2008, time.January, 1, 0, 0, 0, 0, time.UTC)
		d.GuardianAuthorization = &domain.Attachment{Field: "autorizacion", ContentType: "image/jpeg", Size: 10}
		if err := CheckDraft(d, checkNow); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("eighteen needs no authorization", func(t *testing.T) {
		d := validDraft()
		d.BirthDate = time.Date(2007, time.June, 15, 0, 0, 0, 0, time.UTC)
		if err := CheckDraft(d, checkNow); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCheckDraftFiles(t *testing.T) {
	t.Run("missing selfie", func(t *testing.T) {
		d := validDraft()
		d.Selfie = nil
		assertFails(t, d, "selfieImage", MsgFileRequired)
	})

	t.Run("zip id image rejected", func(t *testing.T) {
		d := validDraft()
		d.IDFront.ContentType = "application/zip"
		assertFails(t, d, "idImage", MsgImageOnly)
	})

	t.Run("oversize authorization rejected", func(t *testing.T) {
		d := validDraft()
		d.BirthDate = time.Date(2009, time.January, 1, 0, 0, 0, 0, time.UTC)
		d.GuardianAuthorization = &domain.Attachment{Field: "autorizacion", ContentType: "application/pdf", Size: MaxFileSize + 1}
		assertFails(t, d, "autorizacion", MsgFileTooLarge)
	})
}
