package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
	"github.com/ligasala/registration-portal/internal/core/validation"
)

type RosterService struct {
	gateway ports.RosterGateway
	logger  zerolog.Logger
	now     func() time.Time
}

func NewRosterService(gateway ports.RosterGateway, logger zerolog.Logger) *RosterService {
	return &RosterService{gateway: gateway, logger: logger, now: time.Now}
}

func (s *RosterService) ListByManager(ctx context.Context, sess *domain.Session, managerID string) ([]domain.Player, error) {
	if err := requireCredential(sess); err != nil {
		return nil, err
	}
	if managerID == "" {
		return nil, domain.ErrManagerNotFound
	}
	return s.gateway.ListByManager(ctx, sess.Credential, managerID)
}

func (s *RosterService) PublicRoster(ctx context.Context, teamCode string) (*domain.TeamRoster, error) {
	teamCode = strings.Join(strings.Fields(teamCode), "")
	if teamCode == "" {
		return nil, domain.ErrTeamNotFound
	}
	return s.gateway.PublicRoster(ctx, teamCode)
}

// UpdatePlayer validates whichever fields the edit touches with the same
// rules the registration form applies, then forwards the partial update.
func (s *RosterService) UpdatePlayer(ctx context.Context, sess *domain.Session, playerID string, update ports.PlayerUpdate) (*domain.Player, error) {
	if err := requireCredential(sess); err != nil {
		return nil, err
	}
	if playerID == "" {
		return nil, domain.ErrPlayerNotFound
	}

	fields := map[string]*string{
		"firstName":      &update.FirstName,
		"lastName":       &update.LastName,
		"identificacion": &update.Identification,
		"numjugador":     &update.JerseyNumber,
	}
	for name, value := range fields {
		if *value == "" {
			continue
		}
		rule := validation.Fields[name]
		*value = rule.Sanitize(*value)
		if !rule.Validate(*value) {
			return nil, domain.NewValidationError(name, rule.Message)
		}
	}

	if !update.BirthDate.IsZero() {
		age := domain.AgeOn(update.BirthDate, s.now())
		if age < domain.MinimumAge {
			return nil, domain.NewValidationError("dob", validation.MsgUnderMinimumAge)
		}
		// An authorization already on file upstream satisfies the minor
		// requirement; a fresh upload is only demanded when none exists.
		if domain.RequiresGuardianAuthorization(age) && update.GuardianAuthorization == nil {
			player, err := s.gateway.GetPlayer(ctx, sess.Credential, playerID)
			if err != nil {
				return nil, err
			}
			if !player.HasGuardianAuthorization() {
				return nil, domain.NewValidationError("autorizacion", validation.MsgGuardianRequired)
			}
		}
	}

	for _, a := range []*domain.Attachment{update.IDFront, update.IDBack, update.Selfie} {
		if a == nil {
			continue
		}
		if err := validation.CheckImage(a); err != nil {
			return nil, err
		}
	}
	if update.GuardianAuthorization != nil {
		if err := validation.CheckDocument(update.GuardianAuthorization); err != nil {
			return nil, err
		}
	}

	player, err := s.gateway.UpdatePlayer(ctx, sess.Credential, playerID, update)
	if err != nil {
		s.logger.Warn().Err(err).Str("player_id", playerID).Msg("player update failed")
		return nil, err
	}
	s.logger.Info().Str("player_id", playerID).Msg("player updated")
	return player, nil
}

func (s *RosterService) DeletePlayer(ctx context.Context, sess *domain.Session, playerID string) error {
	if err := requireCredential(sess); err != nil {
		return err
	}
	if playerID == "" {
		return domain.ErrPlayerNotFound
	}
	if err := s.gateway.DeletePlayer(ctx, sess.Credential, playerID); err != nil {
		return err
	}
	s.logger.Info().Str("player_id", playerID).Msg("player deleted")
	return nil
}
