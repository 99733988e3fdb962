package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

type FixtureService struct {
	gateway ports.FixtureGateway
	logger  zerolog.Logger
}

func NewFixtureService(gateway ports.FixtureGateway, logger zerolog.Logger) *FixtureService {
	return &FixtureService{gateway: gateway, logger: logger}
}

func (s *FixtureService) List(ctx context.Context) ([]domain.FixtureRound, error) {
	return s.gateway.List(ctx)
}

func (s *FixtureService) Create(ctx context.Context, sess *domain.Session, round *domain.FixtureRound) (*domain.FixtureRound, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := checkRound(round); err != nil {
		return nil, err
	}
	created, err := s.gateway.Create(ctx, sess.Credential, round)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("round", round.Number).Msg("fixture round created")
	return created, nil
}

func (s *FixtureService) Update(ctx context.Context, sess *domain.Session, id string, round *domain.FixtureRound) (*domain.FixtureRound, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.ErrRoundNotFound
	}
	if err := checkRound(round); err != nil {
		return nil, err
	}
	return s.gateway.Update(ctx, sess.Credential, id, round)
}

func (s *FixtureService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if id == "" {
		return domain.ErrRoundNotFound
	}
	if err := s.gateway.Delete(ctx, sess.Credential, id); err != nil {
		return err
	}
	s.logger.Info().Str("round_id", id).Msg("fixture round deleted")
	return nil
}

func checkRound(round *domain.FixtureRound) error {
	if round.Number < 1 {
		return domain.NewValidationError("numeroFecha", "Número de fecha inválido")
	}
	round.Title = strings.TrimSpace(round.Title)
	if round.Title == "" {
		return domain.NewValidationError("titulo", "Título requerido")
	}
	for _, m := range round.Matches {
		if strings.TrimSpace(m.HomeTeam) == "" || strings.TrimSpace(m.AwayTeam) == "" {
			return domain.NewValidationError("partidos", "Cada partido requiere dos equipos")
		}
	}
	return nil
}
