package domain

import (
	"io"
	"time"
)

// Phase represents the lifecycle state of one registration flow.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// phaseTransitions defines the allowed state machine transitions.
// Submitting is only reachable from Editing, which is what makes
// concurrent submissions impossible.
var phaseTransitions = map[Phase][]Phase{
	PhaseEditing:    {PhaseSubmitting},
	PhaseSubmitting: {PhaseSucceeded, PhaseFailed},
	PhaseSucceeded:  {PhaseEditing},
	PhaseFailed:     {PhaseEditing},
}

// CanTransitionTo reports whether moving from the current phase to next is valid.
func (p Phase) CanTransitionTo(next Phase) bool {
	for _, allowed := range phaseTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Attachment is an opaque reference to an uploaded file. The content is not
// read until the draft is encoded for the upstream API; size and declared
// content type are known up front so rules can reject a file immediately.
type Attachment struct {
	Field       string
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// RegistrationDraft is the mutable record filled in for one registration.
// TeamName is derived: it is non-empty only after the manager code has been
// confirmed valid by the upstream lookup.
type RegistrationDraft struct {
	ManagerCode    string
	TeamName       string
	FirstName      string
	LastName       string
	BirthDate      time.Time
	Identification string
	JerseyNumber   string

	IDFront               *Attachment
	IDBack                *Attachment
	Selfie                *Attachment
	GuardianAuthorization *Attachment
}

// Reset clears every field and attachment reference, returning the draft to
// its initial empty value. Required between registrations: no attachment is
// reused across submissions.
func (d *RegistrationDraft) Reset() {
	*d = RegistrationDraft{}
}

// RegistrationWindow is the two-variant open/closed gate selected once from
// configuration at startup. When closed, Notice carries the informational
// text shown instead of the form and no upstream call is made.
type RegistrationWindow struct {
	Open   bool
	Notice string
}

// Closed returns the error a gated operation surfaces while the window is
// closed. It matches ErrRegistrationClosed under errors.Is and carries the
// configured notice for the user-facing message.
func (w RegistrationWindow) Closed() error {
	return &WindowClosedError{Notice: w.Notice}
}

// WindowClosedError wraps ErrRegistrationClosed with the notice text.
type WindowClosedError struct {
	Notice string
}

func (e *WindowClosedError) Error() string { return ErrRegistrationClosed.Error() }

func (e *WindowClosedError) Unwrap() error { return ErrRegistrationClosed }
