package domain

// Role identifies what a logged-in credential is allowed to do.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "dirigente"
)

// Session carries the caller identity for one request. Credential is the raw
// Basic authorization value forwarded verbatim to the upstream API, which is
// the party that actually verifies it. TeamID is set for manager sessions.
type Session struct {
	Role       Role
	Credential string
	ManagerID  string
	TeamID     string
}

// IsAdmin reports whether the session may use the admin endpoints.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// LoginResult is the upstream response to a credential check.
type LoginResult struct {
	Role      Role   `json:"role"`
	ManagerID string `json:"dirigenteId,omitempty"`
	TeamName  string `json:"equipo,omitempty"`
}
