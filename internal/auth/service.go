// Package auth implements registration, authentication, and admin user
// management over the durable user registry in the local store.
//
// The service itself is stateless: it reads and writes the registry and
// the persisted session record, and returns Session values for the state
// store to adopt. The state store is the single owner of the active
// session; nothing here caches identity.
//
// Mutating operations wait a configurable latency before touching any
// data, emulating the request round-trip of the original backendless
// app. Configure zero latency in tests.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"scholartrack/internal/common"
	"scholartrack/internal/localstore"
	"scholartrack/internal/logging"
	"scholartrack/internal/models"
	"scholartrack/internal/timex"
)

// Profile carries the optional fields a caller may supply at signup.
type Profile struct {
	Name string
	Role models.Role
}

// Service performs registry and session operations.
type Service struct {
	store   localstore.Store
	secret  []byte
	latency time.Duration
	log     logging.Logger
}

// New returns a Service over the given store. secret signs persisted
// session tokens; latency applies to every mutating operation.
func New(store localstore.Store, secret string, latency time.Duration, log logging.Logger) *Service {
	return &Service{store: store, secret: []byte(secret), latency: latency, log: log}
}

// Register creates a registry entry. Email and password are required and
// password must match confirm (common.ErrValidation otherwise); a
// registered email fails with common.ErrDuplicateEmail. Role defaults to
// student, name to the part of the email before '@'. A session is
// established and returned only when the resulting role is student;
// admin signups return a nil session.
func (s *Service) Register(ctx context.Context, email, password, confirm string, profile Profile) (*models.User, *models.Session, error) {
	if err := timex.Sleep(ctx, s.latency); err != nil {
		return nil, nil, err
	}

	if email == "" || password == "" || password != confirm {
		return nil, nil, common.ErrValidation
	}

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, u := range registry {
		if u.Email == email {
			return nil, nil, common.ErrDuplicateEmail
		}
	}

	name := profile.Name
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	role := profile.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, nil, common.ErrValidation
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),
	}

	if err := s.saveRegistry(ctx, append(registry, user)); err != nil {
		return nil, nil, err
	}
	s.log.Info(ctx, "user registered", "email", email, "role", string(role))

	if role != models.RoleStudent {
		return &user, nil, nil
	}

	session := models.SessionOf(user)
	if err := s.persistSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return &user, &session, nil
}

// Authenticate requires a registry entry matching email, password, and
// role simultaneously; a correct password under the wrong role selection
// fails rather than switching role. On success the session is persisted
// and returned.
func (s *Service) Authenticate(ctx context.Context, email, password string, role models.Role) (*models.Session, error) {
	if err := timex.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range registry {
		if u.Email == email && u.Password == password && u.Role == role {
			session := models.SessionOf(u)
			if err := s.persistSession(ctx, session); err != nil {
				return nil, err
			}
			s.log.Info(ctx, "login", "email", email, "role", string(role))
			return &session, nil
		}
	}

	return nil, common.ErrInvalidCredentials
}

// CreateAdmin adds an administrator account on behalf of actor. All
// fields are required; the new record is stamped with the acting
// admin's id.
func (s *Service) CreateAdmin(ctx context.Context, actor *models.Session, email, password, name string) (*models.User, error) {
	if err := timex.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	if email == "" || password == "" || name == "" {
		return nil, common.ErrValidation
	}

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range registry {
		if u.Email == email {
			return nil, common.ErrDuplicateEmail
		}
	}

	admin := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Name:      name,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
		CreatedBy: actor.ID,
	}

	if err := s.saveRegistry(ctx, append(registry, admin)); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "admin created", "email", email, "by", actor.ID)
	return &admin, nil
}

// ListUsers returns every registry entry except the acting session's own.
func (s *Service) ListUsers(ctx context.Context, actor *models.Session) ([]models.User, error) {
	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}
	others := make([]models.User, 0, len(registry))
	for _, u := range registry {
		if u.ID != actor.ID {
			others = append(others, u)
		}
	}
	return others, nil
}

// UpdateUserRole sets the role of the user with userID. The operation is
// idempotent; setting the role a user already has succeeds. An unknown
// id fails with common.ErrNotFound.
func (s *Service) UpdateUserRole(ctx context.Context, userID string, role models.Role) (*models.User, error) {
	if err := timex.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	var updated *models.User
	for i := range registry {
		if registry[i].ID == userID {
			registry[i].Role = role
			updated = &registry[i]
			break
		}
	}
	if updated == nil {
		return nil, common.ErrNotFound
	}

	if err := s.saveRegistry(ctx, registry); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes the user with userID from the registry. Deleting
// the acting session's own account fails with common.ErrSelfDeletion.
// An unknown id is a no-op.
func (s *Service) DeleteUser(ctx context.Context, actor *models.Session, userID string) error {
	if err := timex.Sleep(ctx, s.latency); err != nil {
		return err
	}

	if userID == actor.ID {
		return common.ErrSelfDeletion
	}

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return err
	}

	next := make([]models.User, 0, len(registry))
	for _, u := range registry {
		if u.ID != userID {
			next = append(next, u)
		}
	}

	if err := s.saveRegistry(ctx, next); err != nil {
		return err
	}
	s.log.Info(ctx, "user deleted", "id", userID, "by", actor.ID)
	return nil
}

// Logout clears the persisted session record. The registry is untouched.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Remove(ctx, localstore.KeySession)
}

// SeedAdmin seeds one administrator record into an empty registry. It is
// an explicit first-run step performed once at startup; a non-empty
// registry is left alone.
func (s *Service) SeedAdmin(ctx context.Context, email, password, name string) error {
	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return err
	}
	if len(registry) > 0 {
		return nil
	}

	admin := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Name:      name,
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := s.saveRegistry(ctx, []models.User{admin}); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	s.log.Info(ctx, "registry seeded with bootstrap admin", "email", email)
	return nil
}
