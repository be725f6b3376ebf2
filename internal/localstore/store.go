// Package localstore implements the key-value persistence surface that
// backs the durable side of ScholarTrack: string blobs addressed by
// string keys, last-writer-wins, no transactions exposed to callers.
//
// Writers that maintain a collection under a single key must always
// read-modify-write the whole blob; partial updates are not supported.
package localstore

import (
	"context"
	"errors"
)

// Persisted keys. They are kept byte-for-byte compatible with the
// storage keys of the system this app replaces, so an existing data
// file keeps working.
const (
	KeySession      = "scholartrack_user"
	KeyRegistry     = "scholartrack_all_users"
	KeyScholarships = "scholartrack_scholarships"
	KeyApplications = "scholartrack_applications"
)

// ErrKeyNotFound is returned by Get for an absent key. Absence is an
// expected condition (first run, after Remove), not a failure.
var ErrKeyNotFound = errors.New("key not found")

// Store is the local store adapter contract.
type Store interface {
	// Get returns the blob stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
