package services

import (
	"github.com/dmitrijs2005/cipherhunt/internal/models"
)

// Session is the state of the logged-in player for the lifetime of a CLI
// run. User mirrors the stored record and is refreshed after every write.
type Session struct {
	User         *models.User
	CurrentLevel int
}

// Username is "" for a nil session.
func (s *Session) Username() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Username
}

// Active reports whether s belongs to a logged-in user.
func (s *Session) Active() bool {
	return s.Username() != ""
}
