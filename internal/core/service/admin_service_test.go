package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

type stubAdminGateway struct {
	loginResult *domain.LoginResult
	loginErr    error
	managers    []domain.Manager
	teams       []domain.Team
	created     any
	deletedID   string
}

func (g *stubAdminGateway) Login(_ context.Context, username, password string) (*domain.LoginResult, error) {
	return g.loginResult, g.loginErr
}

func (g *stubAdminGateway) ListManagers(_ context.Context, credential string) ([]domain.Manager, error) {
	return g.managers, nil
}

func (g *stubAdminGateway) CreateManager(_ context.Context, credential string, m domain.Manager) (*domain.Manager, error) {
	g.created = m
	return &m, nil
}

func (g *stubAdminGateway) UpdateManager(_ context.Context, credential, id string, m domain.Manager) (*domain.Manager, error) {
	return &m, nil
}

func (g *stubAdminGateway) DeleteManager(_ context.Context, credential, id string) error {
	g.deletedID = id
	return nil
}

func (g *stubAdminGateway) ListTeams(_ context.Context, credential string) ([]domain.Team, error) {
	return g.teams, nil
}

func (g *stubAdminGateway) CreateTeam(_ context.Context, credential string, t domain.Team) (*domain.Team, error) {
	g.created = t
	return &t, nil
}

func (g *stubAdminGateway) UpdateTeam(_ context.Context, credential, id string, t domain.Team) (*domain.Team, error) {
	return &t, nil
}

func (g *stubAdminGateway) DeleteTeam(_ context.Context, credential, id string) error {
	g.deletedID = id
	return nil
}

func adminSession() *domain.Session {
	return &domain.Session{Role: domain.RoleAdmin, Credential: "Basic YWRtaW46c2VjcmV0"}
}

func TestLogin(t *testing.T) {
	t.Run("blank credentials rejected locally", func(t *testing.T) {
		svc := NewAdminService(&stubAdminGateway{}, discardLogger)
		_, err := svc.Login(context.Background(), "  ", "")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("got %v, want ErrUnauthorized", err)
		}
	})

	t.Run("forwards and returns role", func(t *testing.T) {
		gw := &stubAdminGateway{loginResult: &domain.LoginResult{Role: domain.RoleManager, ManagerID: "d1", TeamName: "Tigres FC"}}
		svc := NewAdminService(gw, discardLogger)
		result, err := svc.Login(context.Background(), "dir", "pass")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Role != domain.RoleManager || result.ManagerID != "d1" {
			t.Errorf("result = %+v", result)
		}
	})
}

func TestManagerCRUDRequiresAdmin(t *testing.T) {
	svc := NewAdminService(&stubAdminGateway{}, discardLogger)

	if _, err := svc.ListManagers(context.Background(), managerSession()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("manager session listing managers: got %v, want ErrForbidden", err)
	}
	if _, err := svc.CreateManager(context.Background(), nil, domain.Manager{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("nil session: got %v, want ErrUnauthorized", err)
	}
}

func TestCreateManagerValidation(t *testing.T) {
	svc := NewAdminService(&stubAdminGateway{}, discardLogger)

	_, err := svc.CreateManager(context.Background(), adminSession(), domain.Manager{Username: "dir1", Name: "Dirigente Uno"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "password" {
		t.Errorf("got %v, want password validation error", err)
	}

	if _, err := svc.CreateManager(context.Background(), adminSession(), domain.Manager{Username: "dir1", Name: "Dirigente Uno", Password: "s3cret"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpdateManagerPasswordOptional(t *testing.T) {
	svc := NewAdminService(&stubAdminGateway{}, discardLogger)

	if _, err := svc.UpdateManager(context.Background(), adminSession(), "d1", domain.Manager{Username: "dir1", Name: "Dirigente Uno"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateTeamNormalizesCode(t *testing.T) {
	gw := &stubAdminGateway{}
	svc := NewAdminService(gw, discardLogger)

	created, err := svc.CreateTeam(context.Background(), adminSession(), domain.Team{Name: " Tigres FC ", Code: " ab 12 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Code != "AB12" || created.Name != "Tigres FC" {
		t.Errorf("created = %+v", created)
	}
}

func TestDeleteTeamRequiresID(t *testing.T) {
	svc := NewAdminService(&stubAdminGateway{}, discardLogger)

	if err := svc.DeleteTeam(context.Background(), adminSession(), ""); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Errorf("got %v, want ErrTeamNotFound", err)
	}
}
