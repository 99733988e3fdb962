package ports

import (
	"context"
	"time"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

// SubmitResult is returned by a successful registration.
type SubmitResult struct {
	Player  *domain.Player
	Message string
}

// PlayerUpdate carries a partial edit of an existing player. Zero-valued
// fields and nil attachments mean "unchanged".
type PlayerUpdate struct {
	FirstName      string
	LastName       string
	BirthDate      time.Time
	Identification string
	JerseyNumber   string

	IDFront               *domain.Attachment
	IDBack                *domain.Attachment
	Selfie                *domain.Attachment
	GuardianAuthorization *domain.Attachment
}

// RegistrationService defines the public registration use cases.
type RegistrationService interface {
	Window() domain.RegistrationWindow
	ValidateManagerCode(ctx context.Context, code string) (string, error)
	Register(ctx context.Context, draft *domain.RegistrationDraft) (*SubmitResult, error)
}

// RosterService defines roster viewing and editing use cases.
type RosterService interface {
	ListByManager(ctx context.Context, sess *domain.Session, managerID string) ([]domain.Player, error)
	PublicRoster(ctx context.Context, teamCode string) (*domain.TeamRoster, error)
	UpdatePlayer(ctx context.Context, sess *domain.Session, playerID string, update PlayerUpdate) (*domain.Player, error)
	DeletePlayer(ctx context.Context, sess *domain.Session, playerID string) error
}

// FixtureService defines schedule use cases. Writes require an admin session.
type FixtureService interface {
	List(ctx context.Context) ([]domain.FixtureRound, error)
	Create(ctx context.Context, sess *domain.Session, round *domain.FixtureRound) (*domain.FixtureRound, error)
	Update(ctx context.Context, sess *domain.Session, id string, round *domain.FixtureRound) (*domain.FixtureRound, error)
	Delete(ctx context.Context, sess *domain.Session, id string) error
}

// AdminService defines login and manager/team management use cases.
type AdminService interface {
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)

	ListManagers(ctx context.Context, sess *domain.Session) ([]domain.Manager, error)
	CreateManager(ctx context.Context, sess *domain.Session, m domain.Manager) (*domain.Manager, error)
	UpdateManager(ctx context.Context, sess *domain.Session, id string, m domain.Manager) (*domain.Manager, error)
	DeleteManager(ctx context.Context, sess *domain.Session, id string) error

	ListTeams(ctx context.Context, sess *domain.Session) ([]domain.Team, error)
	CreateTeam(ctx context.Context, sess *domain.Session, t domain.Team) (*domain.Team, error)
	UpdateTeam(ctx context.Context, sess *domain.Session, id string, t domain.Team) (*domain.Team, error)
	DeleteTeam(ctx context.Context, sess *domain.Session, id string) error
}

// ExportService defines the report download use cases.
type ExportService interface {
	PlayersExcel(ctx context.Context, sess *domain.Session) (*Download, error)
	RosterWord(ctx context.Context, sess *domain.Session, managerID string) (*Download, error)
	RosterPDF(ctx context.Context, sess *domain.Session, managerID string) (*Download, error)
	ConsolidatedAuthorizations(ctx context.Context, sess *domain.Session) (*Download, error)
}
