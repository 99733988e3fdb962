package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
	"github.com/ligasala/registration-portal/internal/core/validation"
)

type stubRosterGateway struct {
	players    []domain.Player
	roster     *domain.TeamRoster
	current    *domain.Player
	updated    ports.PlayerUpdate
	deletedID  string
	listCalls  int
	getCalls   int
	lastCred   string
	gatewayErr error
}

func (g *stubRosterGateway) ListByManager(_ context.Context, credential, managerID string) ([]domain.Player, error) {
	g.listCalls++
	g.lastCred = credential
	return g.players, g.gatewayErr
}

func (g *stubRosterGateway) PublicRoster(_ context.Context, teamCode string) (*domain.TeamRoster, error) {
	return g.roster, g.gatewayErr
}

func (g *stubRosterGateway) GetPlayer(_ context.Context, credential, playerID string) (*domain.Player, error) {
	g.getCalls++
	g.lastCred = credential
	if g.current == nil {
		return nil, domain.ErrPlayerNotFound
	}
	return g.current, nil
}

func (g *stubRosterGateway) UpdatePlayer(_ context.Context, credential, playerID string, update ports.PlayerUpdate) (*domain.Player, error) {
	g.lastCred = credential
	g.updated = update
	if g.gatewayErr != nil {
		return nil, g.gatewayErr
	}
	return &domain.Player{ID: playerID}, nil
}

func (g *stubRosterGateway) DeletePlayer(_ context.Context, credential, playerID string) error {
	g.deletedID = playerID
	return g.gatewayErr
}

func managerSession() *domain.Session {
	return &domain.Session{Role: domain.RoleManager, Credential: "Basic ZGlyOnBhc3M=", ManagerID: "d1"}
}

func TestListByManagerRequiresCredential(t *testing.T) {
	svc := NewRosterService(&stubRosterGateway{}, discardLogger)

	_, err := svc.ListByManager(context.Background(), nil, "d1")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestListByManagerForwardsCredential(t *testing.T) {
	gw := &stubRosterGateway{players: []domain.Player{{ID: "p1"}}}
	svc := NewRosterService(gw, discardLogger)

	players, err := svc.ListByManager(context.Background(), managerSession(), "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 1 || gw.lastCred != "Basic ZGlyOnBhc3M=" {
		t.Errorf("players=%v cred=%q", players, gw.lastCred)
	}
}

func TestUpdatePlayerSanitizesFields(t *testing.T) {
	gw := &stubRosterGateway{}
	svc := NewRosterService(gw, discardLogger)

	_, err := svc.UpdatePlayer(context.Background(), managerSession(), "p1", ports.PlayerUpdate{
		FirstName:    " pedro  pablo ",
		JerseyNumber: "07",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.updated.FirstName != "PEDRO PABLO" {
		t.Errorf("first name = %q", gw.updated.FirstName)
	}
	if gw.updated.JerseyNumber != "07" {
		t.Errorf("jersey = %q", gw.updated.JerseyNumber)
	}
}

func TestUpdatePlayerRejectsBadJersey(t *testing.T) {
	svc := NewRosterService(&stubRosterGateway{}, discardLogger)

	_, err := svc.UpdatePlayer(context.Background(), managerSession(), "p1", ports.PlayerUpdate{JerseyNumber: "100"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Message != validation.MsgInvalidJerseyNumber {
		t.Errorf("got %v, want jersey validation error", err)
	}
}

func TestUpdatePlayerMinorNeedsAuthorization(t *testing.T) {
	gw := &stubRosterGateway{current: &domain.Player{ID: "p1"}}
	svc := NewRosterService(gw, discardLogger)
	svc.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	update := ports.PlayerUpdate{BirthDate: time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)}
	_, err := svc.UpdatePlayer(context.Background(), managerSession(), "p1", update)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Message != validation.MsgGuardianRequired {
		t.Errorf("got %v, want guardian-required error", err)
	}

	update.GuardianAuthorization = &domain.Attachment{Field: "autorizacion", ContentType: "application/pdf", Size: 10}
	if _, err := svc.UpdatePlayer(context.Background(), managerSession(), "p1", update); err != nil {
		t.Errorf("unexpected error with authorization attached: %v", err)
	}
}

func TestUpdatePlayerAcceptsAuthorizationOnFile(t *testing.T) {
	gw := &stubRosterGateway{current: &domain.Player{ID: "p1", GuardianURL: "/uploads/autorizacion-p1.pdf"}}
	svc := NewRosterService(gw, discardLogger)
	svc.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	update := ports.PlayerUpdate{BirthDate: time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)}
	if _, err := svc.UpdatePlayer(context.Background(), managerSession(), "p1", update); err != nil {
		t.Errorf("unexpected error with an authorization already stored: %v", err)
	}
	if gw.getCalls != 1 {
		t.Errorf("player fetched %d times, want 1", gw.getCalls)
	}
}

func TestUpdatePlayerAdultSkipsRecordFetch(t *testing.T) {
	gw := &stubRosterGateway{}
	svc := NewRosterService(gw, discardLogger)
	svc.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	update := ports.PlayerUpdate{BirthDate: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)}
	if _, err := svc.UpdatePlayer(context.Background(), managerSession(), "p1", update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.getCalls != 0 {
		t.Errorf("player fetched %d times, want 0", gw.getCalls)
	}
}

func TestDeletePlayer(t *testing.T) {
	gw := &stubRosterGateway{}
	svc := NewRosterService(gw, discardLogger)

	if err := svc.DeletePlayer(context.Background(), managerSession(), "p9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.deletedID != "p9" {
		t.Errorf("deleted id = %q", gw.deletedID)
	}
}

func TestPublicRosterStripsCode(t *testing.T) {
	gw := &stubRosterGateway{roster: &domain.TeamRoster{TeamName: "Tigres FC"}}
	svc := NewRosterService(gw, discardLogger)

	roster, err := svc.PublicRoster(context.Background(), " AB 12 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roster.TeamName != "Tigres FC" {
		t.Errorf("roster = %+v", roster)
	}

	if _, err := svc.PublicRoster(context.Background(), "   "); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Errorf("blank code: got %v, want ErrTeamNotFound", err)
	}
}
