package domain

import "time"

const (
	// MinimumAge is the youngest age the league accepts.
	MinimumAge = 14
	// AdultAge is the age from which no guardian authorization is needed.
	AdultAge = 18
)

// AgeOn computes whole elapsed years between birth and the reference date.
// An exact anniversary counts as having turned that age.
func AgeOn(birth, on time.Time) int {
	years := on.Year() - birth.Year()
	anniversary := time.Date(on.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, on.Location())
	if on.Before(anniversary) {
		years--
	}
	return years
}

// RequiresGuardianAuthorization reports whether a registrant of the given
// age must attach a guardian-authorization document (ages 14 through 17).
func RequiresGuardianAuthorization(age int) bool {
	return age >= MinimumAge && age < AdultAge
}
