package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"scholartrack/internal/localstore"
	"scholartrack/internal/models"
)

// loadRegistry reads the full user registry blob. An absent key is an
// empty registry, not an error.
//
// Registry writers always go load, modify, saveRegistry with the whole
// collection; the store has no partial-key updates.
func (s *Service) loadRegistry(ctx context.Context) ([]models.User, error) {
	blob, err := s.store.Get(ctx, localstore.KeyRegistry)
	if errors.Is(err, localstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user registry: %w", err)
	}

	var registry []models.User
	if err := json.Unmarshal([]byte(blob), &registry); err != nil {
		return nil, fmt.Errorf("failed to decode user registry: %w", err)
	}
	return registry, nil
}

// saveRegistry writes the full user registry blob.
func (s *Service) saveRegistry(ctx context.Context, registry []models.User) error {
	blob, err := json.Marshal(registry)
	if err != nil {
		return fmt.Errorf("failed to encode user registry: %w", err)
	}
	if err := s.store.Set(ctx, localstore.KeyRegistry, string(blob)); err != nil {
		return fmt.Errorf("failed to save user registry: %w", err)
	}
	return nil
}
