package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
	"github.com/ligasala/registration-portal/internal/core/validation"
)

type RegistrationService struct {
	gateway ports.RegistrationGateway
	window  domain.RegistrationWindow
	logger  zerolog.Logger
	now     func() time.Time

	mu     sync.Mutex
	phases map[string]domain.Phase
}

func NewRegistrationService(gateway ports.RegistrationGateway, window domain.RegistrationWindow, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{
		gateway: gateway,
		window:  window,
		logger:  logger,
		now:     time.Now,
		phases:  make(map[string]domain.Phase),
	}
}

// Window returns the open/closed registration gate chosen at startup.
func (s *RegistrationService) Window() domain.RegistrationWindow {
	return s.window
}

// ValidateManagerCode resolves a manager code to its team name. The code is
// stripped of all whitespace before lookup. While registration is closed no
// upstream call is made.
func (s *RegistrationService) ValidateManagerCode(ctx context.Context, code string) (string, error) {
	if !s.window.Open {
		return "", s.window.Closed()
	}
	code = strings.Join(strings.Fields(code), "")
	if code == "" {
		return "", domain.ErrInvalidManagerCode
	}

	name, err := s.gateway.ValidateManagerCode(ctx, code)
	if err != nil {
		s.logger.Debug().Err(err).Str("code", code).Msg("manager code lookup failed")
		return "", err
	}
	return name, nil
}

// Register runs the full submission flow: sanitize, re-resolve the manager
// code, validate in fixed order, guard against a concurrent submission for
// the same identification, then send upstream. On success the draft is reset
// so nothing is reused.
func (s *RegistrationService) Register(ctx context.Context, draft *domain.RegistrationDraft) (*ports.SubmitResult, error) {
	if !s.window.Open {
		return nil, s.window.Closed()
	}

	sanitizeDraft(draft)

	// The team name is derived from the code on every submission, never
	// taken from the request itself.
	if draft.ManagerCode == "" {
		return nil, domain.NewValidationError("codigoDirigente", validation.MsgInvalidManagerCode)
	}
	teamName, err := s.gateway.ValidateManagerCode(ctx, draft.ManagerCode)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidManagerCode) {
			return nil, domain.NewValidationError("codigoDirigente", validation.MsgInvalidManagerCode)
		}
		return nil, err
	}
	draft.TeamName = teamName

	if err := validation.CheckDraft(draft, s.now()); err != nil {
		return nil, err
	}

	key := draft.Identification
	if !s.beginSubmission(key) {
		return nil, domain.ErrSubmissionInFlight
	}

	player, err := s.gateway.SubmitRegistration(ctx, draft)
	s.finishSubmission(key, err == nil)
	if err != nil {
		s.logger.Warn().Err(err).Str("identification", key).Msg("registration failed")
		return nil, err
	}

	s.logger.Info().Str("identification", key).Str("team", draft.TeamName).Msg("player registered")
	draft.Reset()
	return &ports.SubmitResult{Player: player, Message: SubmissionMessage(nil)}, nil
}

// beginSubmission moves the identification's phase to Submitting. It fails
// when a submission for the same identification is already in flight.
func (s *RegistrationService) beginSubmission(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	phase, ok := s.phases[key]
	if !ok {
		phase = domain.PhaseEditing
	}
	if !phase.CanTransitionTo(domain.PhaseSubmitting) {
		return false
	}
	s.phases[key] = domain.PhaseSubmitting
	return true
}

// finishSubmission walks the phase through its terminal state and back to
// Editing, at which point the entry is dropped.
func (s *RegistrationService) finishSubmission(key string, succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	terminal := domain.PhaseFailed
	if succeeded {
		terminal = domain.PhaseSucceeded
	}
	if s.phases[key].CanTransitionTo(terminal) && terminal.CanTransitionTo(domain.PhaseEditing) {
		delete(s.phases, key)
	}
}

// sanitizeDraft normalizes the text fields. The jersey number is only
// trimmed: an out-of-range value has to fail validation as submitted, not be
// shortened into a number the registrant never typed.
func sanitizeDraft(d *domain.RegistrationDraft) {
	d.ManagerCode = strings.Join(strings.Fields(d.ManagerCode), "")
	d.FirstName = validation.SanitizeName(d.FirstName)
	d.LastName = validation.SanitizeName(d.LastName)
	d.Identification = validation.SanitizeIdentification(d.Identification)
	d.JerseyNumber = strings.TrimSpace(d.JerseyNumber)
}
