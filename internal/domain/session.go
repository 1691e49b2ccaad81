package domain

import "time"

// Session is the server-held record behind the opaque cookie token. A
// session with Admin set is the only privilege credential in the system.
type Session struct {
	Token     string
	Admin     bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
