package models

import "time"

// Notification is an in-session message shown in the notification
// dropdown. Records are never deleted within a session, only flipped
// to read.
type Notification struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
	Read    bool      `json:"read"`
}
