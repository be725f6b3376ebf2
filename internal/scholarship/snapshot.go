package scholarship

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"scholartrack/internal/localstore"
	"scholartrack/internal/models"
	"scholartrack/internal/state"
)

// Load populates the state store from the persisted catalog and
// application snapshots. On first run (no catalog snapshot) the seed
// fixtures are installed and persisted.
func (s *Service) Load(ctx context.Context) error {
	scholarships, found, err := loadBlob[models.Scholarship](ctx, s.store, localstore.KeyScholarships)
	if err != nil {
		return err
	}
	if !found {
		scholarships = seedScholarships()
	}
	s.states.Dispatch(state.SetScholarships{Scholarships: scholarships})
	if !found {
		if err := s.persistScholarships(ctx); err != nil {
			return err
		}
	}

	applications, found, err := loadBlob[models.Application](ctx, s.store, localstore.KeyApplications)
	if err != nil {
		return err
	}
	if !found {
		applications = seedApplications()
	}
	s.states.Dispatch(state.SetApplications{Applications: applications})
	if !found {
		if err := s.persistApplications(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) persistScholarships(ctx context.Context) error {
	snapshot := s.states.State().Scholarships
	s.log.Debug(ctx, "persisting catalog snapshot", "count", len(snapshot))
	return saveBlob(ctx, s.store, localstore.KeyScholarships, snapshot)
}

func (s *Service) persistApplications(ctx context.Context) error {
	snapshot := s.states.State().Applications
	s.log.Debug(ctx, "persisting application snapshot", "count", len(snapshot))
	return saveBlob(ctx, s.store, localstore.KeyApplications, snapshot)
}

func loadBlob[T any](ctx context.Context, store localstore.Store, key string) ([]T, bool, error) {
	blob, err := store.Get(ctx, key)
	if errors.Is(err, localstore.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return items, true, nil
}

func saveBlob[T any](ctx context.Context, store localstore.Store, key string, items []T) error {
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(blob)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
