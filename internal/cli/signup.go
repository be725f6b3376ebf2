package cli

import (
	"context"
	"fmt"

	"scholartrack/internal/auth"
	"scholartrack/internal/state"
	"scholartrack/internal/validation"
)

// signupRules are the field rules the signup form runs before touching
// the registry.
var signupRules = map[string][]validation.Rule{
	"name": {
		validation.MaxLength(100, ""),
	},
	"email": {
		validation.Required("Email is required"),
		validation.Email(""),
	},
	"password": {
		validation.Required("Password is required"),
		validation.MinLength(6, "Password must be at least 6 characters"),
	},
	"confirm": {
		validation.MatchField("password", "Passwords do not match"),
	},
}

// SignUp registers a student account. Field problems are reported
// per-field before the registry is consulted; a duplicate email is
// reported by the auth service. A successful student signup logs the
// new account in immediately.
func (a *App) SignUp(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter full name (optional)", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	values := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"confirm":  confirm,
	}
	if errs := validation.Validate(values, signupRules); len(errs) > 0 {
		for field, msg := range errs {
			fmt.Fprintf(a.out, "%s: %s\n", field, msg)
		}
		return nil
	}

	a.states.Dispatch(state.SetLoading{Loading: true})
	_, session, err := a.auth.Register(ctx, email, password, confirm, auth.Profile{Name: name})
	a.states.Dispatch(state.SetLoading{Loading: false})

	if err != nil {
		a.states.Dispatch(state.SetError{Message: err.Error()})
		fmt.Fprintf(a.out, "Signup unsuccessful: %s\n", err.Error())
		return err
	}

	a.states.Dispatch(state.SetError{})
	if session != nil {
		a.states.Dispatch(state.SetUser{Session: session})
		fmt.Fprintf(a.out, "Welcome, %s\n", session.Name)
	}
	return nil
}
