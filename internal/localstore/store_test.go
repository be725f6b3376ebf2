package localstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:localstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM kv;`)
	require.NoError(t, err)
	return db
}

// stores returns both implementations so every contract test runs
// against each.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"sqlite": NewSQLiteStore(setupDB(t)),
		"memory": NewMemoryStore(),
	}
}

func TestStore_GetMissingKey_ErrKeyNotFound(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), "absent")
			require.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestStore_SetThenGet_RoundTrips(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "k", `{"a":1}`))

			got, err := s.Get(ctx, "k")
			require.NoError(t, err)
			require.Equal(t, `{"a":1}`, got)
		})
	}
}

func TestStore_Set_LastWriterWins(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "k", "first"))
			require.NoError(t, s.Set(ctx, "k", "second"))

			got, err := s.Get(ctx, "k")
			require.NoError(t, err)
			require.Equal(t, "second", got)
		})
	}
}

func TestStore_Remove_ThenGetFails(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "k", "v"))
			require.NoError(t, s.Remove(ctx, "k"))

			_, err := s.Get(ctx, "k")
			require.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestWithinTx_ErrorRollsBackEveryWrite(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := WithinTx(ctx, db, func(ctx context.Context, store Store) error {
		if err := store.Set(ctx, "a", "1"); err != nil {
			return err
		}
		if err := store.Set(ctx, "b", "2"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	direct := NewSQLiteStore(db)
	_, err = direct.Get(ctx, "a")
	require.ErrorIs(t, err, ErrKeyNotFound)
	_, err = direct.Get(ctx, "b")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestWithinTx_CommitsMultiKeyWrite(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, WithinTx(ctx, db, func(ctx context.Context, store Store) error {
		if err := store.Set(ctx, "a", "1"); err != nil {
			return err
		}
		return store.Set(ctx, "b", "2")
	}))

	direct := NewSQLiteStore(db)
	got, err := direct.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, "1", got)
	got, err = direct.Get(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, "2", got)
}

func TestStore_RemoveAbsentKey_IsNotAnError(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Remove(context.Background(), "never-set"))
		})
	}
}
