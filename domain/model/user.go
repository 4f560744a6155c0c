package model

import "time"

// User mirrors the backend user record. The UI never mutates it; changes
// happen server-side and are picked up on the next fetch.
type User struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	Role               string    `json:"role"` // user | admin
	IsActive           bool      `json:"is_active"`
	LanguagePreference string    `json:"language_preference"`
	CreatedAt          time.Time `json:"created_at,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// Session binds the bearer token to the user it authenticates.
// Token presence implies user presence; a record violating that is
// discarded as a whole rather than repaired.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}
