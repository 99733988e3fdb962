package ports

import (
	"context"
	"io"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

// Download is a binary report streamed back from the upstream API. Body must
// be closed by the caller once written out.
type Download struct {
	ContentType string
	Filename    string
	Body        io.ReadCloser
}

// RegistrationGateway covers the public registration flow against the
// upstream API.
type RegistrationGateway interface {
	// ValidateManagerCode resolves a manager code to its team display name.
	// An unknown code yields domain.ErrInvalidManagerCode.
	ValidateManagerCode(ctx context.Context, code string) (string, error)
	// SubmitRegistration encodes the draft as multipart and creates the player.
	SubmitRegistration(ctx context.Context, draft *domain.RegistrationDraft) (*domain.Player, error)
}

// RosterGateway covers roster reads and writes. The credential is the raw
// Basic authorization value, forwarded verbatim for privileged calls.
type RosterGateway interface {
	ListByManager(ctx context.Context, credential, managerID string) ([]domain.Player, error)
	PublicRoster(ctx context.Context, teamCode string) (*domain.TeamRoster, error)
	// GetPlayer fetches the current upstream record for one player. An
	// unknown id yields domain.ErrPlayerNotFound.
	GetPlayer(ctx context.Context, credential, playerID string) (*domain.Player, error)
	// UpdatePlayer sends only the non-zero fields and attachments of update.
	UpdatePlayer(ctx context.Context, credential, playerID string, update PlayerUpdate) (*domain.Player, error)
	DeletePlayer(ctx context.Context, credential, playerID string) error
}

// FixtureGateway covers the published schedule. Reads are public; writes
// carry the admin credential.
type FixtureGateway interface {
	List(ctx context.Context) ([]domain.FixtureRound, error)
	Create(ctx context.Context, credential string, round *domain.FixtureRound) (*domain.FixtureRound, error)
	Update(ctx context.Context, credential, id string, round *domain.FixtureRound) (*domain.FixtureRound, error)
	Delete(ctx context.Context, credential, id string) error
}

// AdminGateway covers credential checks and manager/team management.
type AdminGateway interface {
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)

	ListManagers(ctx context.Context, credential string) ([]domain.Manager, error)
	CreateManager(ctx context.Context, credential string, m domain.Manager) (*domain.Manager, error)
	UpdateManager(ctx context.Context, credential, id string, m domain.Manager) (*domain.Manager, error)
	DeleteManager(ctx context.Context, credential, id string) error

	ListTeams(ctx context.Context, credential string) ([]domain.Team, error)
	CreateTeam(ctx context.Context, credential string, t domain.Team) (*domain.Team, error)
	UpdateTeam(ctx context.Context, credential, id string, t domain.Team) (*domain.Team, error)
	DeleteTeam(ctx context.Context, credential, id string) error
}

// ExportGateway covers the binary report downloads. These calls run under
// the long export timeout, not the submission one.
type ExportGateway interface {
	PlayersExcel(ctx context.Context, credential string) (*Download, error)
	RosterWord(ctx context.Context, credential, managerID string) (*Download, error)
	RosterPDF(ctx context.Context, credential, managerID string) (*Download, error)
	ConsolidatedAuthorizations(ctx context.Context, credential string) (*Download, error)
}
