package user

import "time"

// User is a purchaser profile supplied by an external account system.
// Values are immutable once constructed.
type User struct {
	BirthDate *time.Time
	Premium   bool
}

// CelebratesOn reports whether at falls on the user's birthday. Only the
// day of month and the month are compared; the year is ignored, so the
// check recurs annually. A user without a known birth date never matches.
func (u User) CelebratesOn(at time.Time) bool {
	if u.BirthDate == nil {
		return false
	}
	return u.BirthDate.Day() == at.Day() && u.BirthDate.Month() == at.Month()
}
