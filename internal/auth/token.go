package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"scholartrack/internal/common"
	"scholartrack/internal/localstore"
	"scholartrack/internal/models"
)

// sessionClaims is the persisted session record: the password-free
// identity subset, signed so a hand-edited blob is rejected on load.
type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// persistSession writes the session token under the session key.
func (s *Service) persistSession(ctx context.Context, session models.Session) error {
	claims := sessionClaims{
		Email: session.Email,
		Name:  session.Name,
		Role:  string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: session.ID,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}
	if err := s.store.Set(ctx, localstore.KeySession, token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// LoadSession restores the persisted session, if any. No stored session
// yields (nil, nil). A token that fails verification yields
// common.ErrInvalidSession; the stale record is removed so the next
// start comes up logged out.
func (s *Service) LoadSession(ctx context.Context) (*models.Session, error) {
	blob, err := s.store.Get(ctx, localstore.KeySession)
	if errors.Is(err, localstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(blob, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidSession
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		_ = s.store.Remove(ctx, localstore.KeySession)
		return nil, common.ErrInvalidSession
	}

	return &models.Session{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  models.Role(claims.Role),
	}, nil
}
