// Package common defines shared sentinel errors used across ScholarTrack
// services. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation / registration errors.
	ErrValidation     = errors.New("please fill all fields correctly")
	ErrDuplicateEmail = errors.New("email already exists")

	// Authentication errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")

	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Admin user-management errors.
	ErrSelfDeletion = errors.New("cannot delete your own account")

	// Application workflow errors.
	ErrDuplicateApplication = errors.New("already applied for this scholarship")
)
