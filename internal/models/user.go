// Package models defines the ScholarTrack domain records and the JSON
// shapes of the blobs persisted through the local store.
package models

import "time"

// Role classifies an account.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User is a durable registry record. The password is stored in plain
// text, matching the persisted registry format this app inherited; it is
// a known weakness of that format, not a design goal.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
}

// Session is the password-free identity record for the currently
// authenticated actor. It is the only user shape that leaves the
// registry.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// SessionOf derives the session record from a registry entry.
func SessionOf(u User) Session {
	return Session{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
