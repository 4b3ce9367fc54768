package models

import "time"

// Session is the client-side admin session: who is signed in, with which
// role, and the bearer token for write requests.
type Session struct {
	Email   string    `json:"email"`
	Role    Role      `json:"role"`
	Token   string    `json:"-"`
	SavedAt time.Time `json:"savedAt"`
}

// IsAdmin reports whether the session belongs to an administrator holding
// a token. Without a token no write can succeed, so the flag stays false.
func (s Session) IsAdmin() bool {
	return s.Role.IsAdmin() && s.Token != ""
}
