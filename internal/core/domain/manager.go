package domain

// Manager is a team delegate ("dirigente") account as held by the upstream
// API. Password is write-only: it is sent on create/update and never echoed
// back in list responses.
type Manager struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"usuario"`
	Password string `json:"password,omitempty"`
	Name     string `json:"nombre"`
}

// Team is a league team. Code is the short token players type into the
// registration form; ManagerID links the team to its delegate account.
type Team struct {
	ID        string `json:"_id,omitempty"`
	Name      string `json:"nombre"`
	Code      string `json:"codigo"`
	ManagerID string `json:"dirigente,omitempty"`
}
