package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

type AdminService struct {
	gateway ports.AdminGateway
	logger  zerolog.Logger
}

func NewAdminService(gateway ports.AdminGateway, logger zerolog.Logger) *AdminService {
	return &AdminService{gateway: gateway, logger: logger}
}

// Login forwards a credential pair upstream. The upstream decides whether
// the pair belongs to the admin or a manager.
func (s *AdminService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}
	result, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		s.logger.Debug().Err(err).Str("username", username).Msg("login rejected")
		return nil, err
	}
	s.logger.Info().Str("username", username).Str("role", string(result.Role)).Msg("login accepted")
	return result, nil
}

func (s *AdminService) ListManagers(ctx context.Context, sess *domain.Session) ([]domain.Manager, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.gateway.ListManagers(ctx, sess.Credential)
}

func (s *AdminService) CreateManager(ctx context.Context, sess *domain.Session, m domain.Manager) (*domain.Manager, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := checkManager(&m, true); err != nil {
		return nil, err
	}
	created, err := s.gateway.CreateManager(ctx, sess.Credential, m)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("username", m.Username).Msg("manager created")
	return created, nil
}

func (s *AdminService) UpdateManager(ctx context.Context, sess *domain.Session, id string, m domain.Manager) (*domain.Manager, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.ErrManagerNotFound
	}
	if err := checkManager(&m, false); err != nil {
		return nil, err
	}
	return s.gateway.UpdateManager(ctx, sess.Credential, id, m)
}

func (s *AdminService) DeleteManager(ctx context.Context, sess *domain.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if id == "" {
		return domain.ErrManagerNotFound
	}
	if err := s.gateway.DeleteManager(ctx, sess.Credential, id); err != nil {
		return err
	}
	s.logger.Info().Str("manager_id", id).Msg("manager deleted")
	return nil
}

func (s *AdminService) ListTeams(ctx context.Context, sess *domain.Session) ([]domain.Team, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	return s.gateway.ListTeams(ctx, sess.Credential)
}

func (s *AdminService) CreateTeam(ctx context.Context, sess *domain.Session, t domain.Team) (*domain.Team, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if err := checkTeam(&t); err != nil {
		return nil, err
	}
	created, err := s.gateway.CreateTeam(ctx, sess.Credential, t)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("team", t.Name).Str("code", t.Code).Msg("team created")
	return created, nil
}

func (s *AdminService) UpdateTeam(ctx context.Context, sess *domain.Session, id string, t domain.Team) (*domain.Team, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, domain.ErrTeamNotFound
	}
	if err := checkTeam(&t); err != nil {
		return nil, err
	}
	return s.gateway.UpdateTeam(ctx, sess.Credential, id, t)
}

func (s *AdminService) DeleteTeam(ctx context.Context, sess *domain.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if id == "" {
		return domain.ErrTeamNotFound
	}
	if err := s.gateway.DeleteTeam(ctx, sess.Credential, id); err != nil {
		return err
	}
	s.logger.Info().Str("team_id", id).Msg("team deleted")
	return nil
}

func checkManager(m *domain.Manager, passwordRequired bool) error {
	m.Username = strings.TrimSpace(m.Username)
	m.Name = strings.TrimSpace(m.Name)
	if m.Username == "" {
		return domain.NewValidationError("usuario", "Usuario requerido")
	}
	if m.Name == "" {
		return domain.NewValidationError("nombre", "Nombre requerido")
	}
	if passwordRequired && m.Password == "" {
		return domain.NewValidationError("password", "Contraseña requerida")
	}
	return nil
}

func checkTeam(t *domain.Team) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Code = strings.ToUpper(strings.Join(strings.Fields(t.Code), ""))
	if t.Name == "" {
		return domain.NewValidationError("nombre", "Nombre requerido")
	}
	if t.Code == "" {
		return domain.NewValidationError("codigo", "Código requerido")
	}
	return nil
}
