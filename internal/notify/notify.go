// Package notify builds and projects in-session notifications. Records
// live in the state store's notification list; this package provides
// the event constructors and the read-state operations over it.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"scholartrack/internal/models"
	"scholartrack/internal/state"
)

// ScholarshipAdded announces a new catalog listing.
func ScholarshipAdded(s models.Scholarship) models.Notification {
	return newNotification(fmt.Sprintf("New scholarship posted: %s ($%.0f)", s.Title, s.Amount))
}

// DeadlineApproaching warns that a listing closes in days days.
func DeadlineApproaching(s models.Scholarship, days int) models.Notification {
	return newNotification(fmt.Sprintf("Deadline approaching: %s closes in %d days", s.Title, days))
}

// StatusChanged announces an application review decision.
func StatusChanged(app models.Application) models.Notification {
	return newNotification(fmt.Sprintf("Your application for %s is now %s", app.ScholarshipTitle, app.Status))
}

func newNotification(message string) models.Notification {
	return models.Notification{
		ID:      uuid.NewString(),
		Message: message,
		Time:    time.Now(),
	}
}

// Publish prepends n to the notification list.
func Publish(store *state.Store, n models.Notification) {
	store.Dispatch(state.AddNotification{Notification: n})
}

// UnreadCount counts notifications whose read flag is still unset.
func UnreadCount(notifications []models.Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flips exactly the matching record to read.
func MarkRead(store *state.Store, id string) {
	store.Dispatch(state.MarkNotificationRead{ID: id})
}

// MarkAllRead flips every record to read.
func MarkAllRead(store *state.Store) {
	store.Dispatch(state.MarkAllNotificationsRead{})
}
