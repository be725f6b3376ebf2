// Package cli is the interactive terminal front end: a REPL whose
// command surface is gated by the active session's role, mirroring the
// role-gated navigation of the views it replaces.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"scholartrack/internal/auth"
	"scholartrack/internal/config"
	"scholartrack/internal/localstore"
	"scholartrack/internal/logging"
	"scholartrack/internal/models"
	"scholartrack/internal/scholarship"
	"scholartrack/internal/state"
)

// App wires the services to the REPL. The state store is the single
// source of truth for the active session; handlers read it through
// Session() and never cache identity themselves.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	states  *state.Store
	auth    *auth.Service
	catalog *scholarship.Service
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens (and migrates) the local database, builds the services,
// seeds the bootstrap admin into an empty registry, loads the persisted
// catalog and application snapshots, and restores a persisted session if
// one verifies.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, store, err := localstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	states := state.NewStore()
	authService := auth.New(store, cfg.SessionSecret, cfg.AuthLatency, log)
	catalog := scholarship.New(states, store, cfg.ApplyLatency, log)

	// First-run writes (bootstrap admin, seed snapshots) land in one
	// transaction.
	err = localstore.WithinTx(ctx, db, func(ctx context.Context, txStore localstore.Store) error {
		if err := auth.New(txStore, cfg.SessionSecret, 0, log).SeedAdmin(ctx, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword, cfg.BootstrapAdminName); err != nil {
			return err
		}
		return scholarship.New(states, txStore, 0, log).Load(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	catalog.PublishDeadlineAlerts(time.Now(), cfg.DeadlineWindowDays)

	if session, err := authService.LoadSession(ctx); err == nil && session != nil {
		states.Dispatch(state.SetUser{Session: session})
	}

	return &App{
		cfg:     cfg,
		log:     log,
		states:  states,
		auth:    authService,
		catalog: catalog,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// Session returns the active session from the state store, or nil.
func (a *App) Session() *models.Session {
	return a.states.State().User
}

func (a *App) status() string {
	session := a.Session()
	if session == nil {
		return "guest"
	}
	return session.Name + " (" + string(session.Role) + ")"
}
