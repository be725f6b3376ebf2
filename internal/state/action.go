package state

import "scholartrack/internal/models"

// Action is a named, data-only state transition request. Each concrete
// action maps to exactly one pure transformation in reduce. Actions not
// defined here (or defined by other packages) leave the state unchanged.
type Action interface {
	isAction()
}

// SetUser replaces the active session mirror.
type SetUser struct {
	Session *models.Session
}

// Logout clears the active session mirror.
type Logout struct{}

// SetScholarships replaces the catalog.
type SetScholarships struct {
	Scholarships []models.Scholarship
}

// AddScholarship appends a listing to the catalog.
type AddScholarship struct {
	Scholarship models.Scholarship
}

// UpdateScholarship replaces the listing with the matching id.
// No listing matches: the catalog is unchanged.
type UpdateScholarship struct {
	Scholarship models.Scholarship
}

// DeleteScholarship removes the listing with the matching id.
type DeleteScholarship struct {
	ID string
}

// SetApplications replaces the application collection.
type SetApplications struct {
	Applications []models.Application
}

// UpdateApplication replaces the application with the matching id.
// No application matches: the collection is unchanged.
type UpdateApplication struct {
	Application models.Application
}

// SetNotifications replaces the notification list.
type SetNotifications struct {
	Notifications []models.Notification
}

// AddNotification prepends a notification, newest first.
type AddNotification struct {
	Notification models.Notification
}

// MarkNotificationRead flips read on the matching notification.
type MarkNotificationRead struct {
	ID string
}

// MarkAllNotificationsRead flips read on every notification.
type MarkAllNotificationsRead struct{}

// SetLoading sets the UI-facing busy flag.
type SetLoading struct {
	Loading bool
}

// SetError sets the UI-facing error message; empty clears it.
type SetError struct {
	Message string
}

func (SetUser) isAction()                  {}
func (Logout) isAction()                   {}
func (SetScholarships) isAction()          {}
func (AddScholarship) isAction()           {}
func (UpdateScholarship) isAction()        {}
func (DeleteScholarship) isAction()        {}
func (SetApplications) isAction()          {}
func (UpdateApplication) isAction()        {}
func (SetNotifications) isAction()         {}
func (AddNotification) isAction()          {}
func (MarkNotificationRead) isAction()     {}
func (MarkAllNotificationsRead) isAction() {}
func (SetLoading) isAction()               {}
func (SetError) isAction()                 {}
