package cli

import (
	"context"
	"fmt"

	"scholartrack/internal/models"
	"scholartrack/internal/state"
)

// Login prompts for email, password, and role and authenticates. All
// three must match one registry entry; a correct password under the
// wrong role selection is rejected. On success the session is adopted
// into the state store.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	roleText, err := GetSimpleText(a.reader, "Login as (student/admin)", a.out)
	if err != nil {
		return err
	}
	role := models.Role(roleText)
	if !role.Valid() {
		role = models.RoleStudent
	}

	a.states.Dispatch(state.SetLoading{Loading: true})
	session, err := a.auth.Authenticate(ctx, email, password, role)
	a.states.Dispatch(state.SetLoading{Loading: false})

	if err != nil {
		a.states.Dispatch(state.SetError{Message: err.Error()})
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return err
	}

	a.states.Dispatch(state.SetError{})
	a.states.Dispatch(state.SetUser{Session: session})
	fmt.Fprintf(a.out, "Welcome back, %s\n", session.Name)
	return nil
}

// Logout clears the persisted session record and the session mirror.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.states.Dispatch(state.Logout{})
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
