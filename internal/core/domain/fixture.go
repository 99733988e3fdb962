package domain

// Match is a single pairing inside a fixture round. The additional values are
// free-form strings the league uses for scores or bonus points; the portal
// passes them through untouched.
type Match struct {
	HomeTeam       string `json:"equipo1"`
	AwayTeam       string `json:"equipo2"`
	KickOff        string `json:"fechaPartido,omitempty"`
	HomeExtraValue string `json:"valor_adicional_eq1,omitempty"`
	AwayExtraValue string `json:"valor_adicional_eq2,omitempty"`
}

// FixtureRound is one published round of the schedule.
type FixtureRound struct {
	ID         string  `json:"_id,omitempty"`
	Number     int     `json:"numeroFecha"`
	Title      string  `json:"titulo"`
	DateHeader string  `json:"fechaCabecera,omitempty"`
	Matches    []Match `json:"partidos"`
}
