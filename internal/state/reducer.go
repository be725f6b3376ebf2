// Package state holds the single application state tree. All mutation
// flows through Store.Dispatch, which applies pure transitions one
// action at a time; everything else reads immutable snapshots.
package state

import "scholartrack/internal/models"

// State is the application state tree. Collection fields are treated as
// immutable values: reduce never modifies a slice it received, it builds
// a replacement. Holding onto a snapshot is therefore always safe.
type State struct {
	User          *models.Session
	Scholarships  []models.Scholarship
	Applications  []models.Application
	Notifications []models.Notification
	Loading       bool
	Err           string
}

// reduce maps (state, action) to the next state. Unknown actions return
// the state unchanged.
func reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetUser:
		s.User = a.Session
	case Logout:
		s.User = nil
	case SetScholarships:
		s.Scholarships = a.Scholarships
	case AddScholarship:
		next := make([]models.Scholarship, 0, len(s.Scholarships)+1)
		next = append(next, s.Scholarships...)
		s.Scholarships = append(next, a.Scholarship)
	case UpdateScholarship:
		next := make([]models.Scholarship, len(s.Scholarships))
		for i, sch := range s.Scholarships {
			if sch.ID == a.Scholarship.ID {
				next[i] = a.Scholarship
			} else {
				next[i] = sch
			}
		}
		s.Scholarships = next
	case DeleteScholarship:
		next := make([]models.Scholarship, 0, len(s.Scholarships))
		for _, sch := range s.Scholarships {
			if sch.ID != a.ID {
				next = append(next, sch)
			}
		}
		s.Scholarships = next
	case SetApplications:
		s.Applications = a.Applications
	case UpdateApplication:
		next := make([]models.Application, len(s.Applications))
		for i, app := range s.Applications {
			if app.ID == a.Application.ID {
				next[i] = a.Application
			} else {
				next[i] = app
			}
		}
		s.Applications = next
	case SetNotifications:
		s.Notifications = a.Notifications
	case AddNotification:
		next := make([]models.Notification, 0, len(s.Notifications)+1)
		next = append(next, a.Notification)
		s.Notifications = append(next, s.Notifications...)
	case MarkNotificationRead:
		next := make([]models.Notification, len(s.Notifications))
		for i, n := range s.Notifications {
			if n.ID == a.ID {
				n.Read = true
			}
			next[i] = n
		}
		s.Notifications = next
	case MarkAllNotificationsRead:
		next := make([]models.Notification, len(s.Notifications))
		for i, n := range s.Notifications {
			n.Read = true
			next[i] = n
		}
		s.Notifications = next
	case SetLoading:
		s.Loading = a.Loading
	case SetError:
		s.Err = a.Message
	}
	return s
}
