package cli

import (
	"context"
	"fmt"

	"scholartrack/internal/notify"
)

// Notifications prints the notification list, newest first, with the
// unread count.
func (a *App) Notifications(ctx context.Context) error {
	notifications := a.states.State().Notifications
	fmt.Fprintf(a.out, "Unread: %d\n", notify.UnreadCount(notifications))

	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s [%s] %s (%s)\n", marker, n.ID, n.Message, n.Time.Format("15:04"))
	}
	return nil
}

// ReadNotification flips one record to read.
func (a *App) ReadNotification(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Notification id", a.out)
	if err != nil {
		return err
	}
	notify.MarkRead(a.states, id)
	return nil
}

// ReadAllNotifications flips every record to read.
func (a *App) ReadAllNotifications(ctx context.Context) error {
	notify.MarkAllRead(a.states)
	return nil
}
