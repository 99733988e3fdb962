package domain

import "time"

// Player mirrors the server-owned player record. The portal only ever holds
// a transient copy for display and editing; the upstream API is the source
// of truth and computes Age itself.
type Player struct {
	ID             string    `json:"_id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	BirthDate      time.Time `json:"dob"`
	Age            int       `json:"age"`
	Identification string    `json:"identificacion"`
	JerseyNumber   int       `json:"numjugador"`
	TeamName       string    `json:"team"`

	IDFrontURL  string `json:"idImageUrl,omitempty"`
	IDBackURL   string `json:"idBackImageUrl,omitempty"`
	SelfieURL   string `json:"selfieImageUrl,omitempty"`
	GuardianURL string `json:"autorizacionUrl,omitempty"`
}

// HasGuardianAuthorization reports whether the upstream record already holds
// an authorization document for this player.
func (p *Player) HasGuardianAuthorization() bool {
	return p.GuardianURL != ""
}

// TeamRoster is the public view returned by the team-code lookup screen.
type TeamRoster struct {
	TeamName string   `json:"equipo"`
	Players  []Player `json:"jugadores"`
}
