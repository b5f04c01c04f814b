package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/aigymlabs/fitcoach/internal/client/client"
	"github.com/aigymlabs/fitcoach/internal/client/config"
	"github.com/aigymlabs/fitcoach/internal/client/dashboard"
	"github.com/aigymlabs/fitcoach/internal/client/router"
	"github.com/aigymlabs/fitcoach/internal/client/session"
	"github.com/aigymlabs/fitcoach/internal/client/ui"
	"github.com/aigymlabs/fitcoach/internal/client/view"
	"github.com/aigymlabs/fitcoach/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the client-side state machine: session, navigation and the
// dashboard data flow, exposed as REPL commands.
type App struct {
	config   *config.Config
	api      client.Client
	repos    *client.Repositories
	sessions *session.Store
	views    *view.Manager
	router   *router.Router
	orch     *dashboard.Orchestrator
	console  *ui.Console
	messages *ui.Messages
	analyzer ui.PoseAnalyzer
	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	repos, err := client.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		log.Error(ctx, "initializing identity cache", "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		_ = repos.DB.Close()
		return nil, err
	}

	a := &App{
		config:   c,
		api:      api,
		repos:    repos,
		sessions: session.NewStore(repos.Identity),
		views:    view.NewManager(),
		console:  ui.NewConsole(os.Stdout),
		messages: ui.NewMessages(os.Stdout),
		analyzer: ui.StaticAnalyzer{},
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		log:      log,
	}
	a.wire()
	return a, nil
}

// wire connects router, orchestrator and display collaborators. Split out
// so tests can rebuild the graph around fakes.
func (a *App) wire() {
	a.router = router.New(a.sessions, a.views, a.messages.Notify, a.log)
	a.orch = dashboard.New(a.api, a.sessions, a.console,
		a.messages.Notify,
		func(ctx context.Context) { a.router.Navigate(ctx, router.KeyLogin) },
		func() bool { return a.router.Location() == router.KeyLogs },
		a.log)

	a.router.OnEnterDashboard(func(ctx context.Context) { _ = a.orch.Refresh(ctx) })
	a.router.OnPageActive(view.PageLogs, func(ctx context.Context) { _ = a.orch.RefreshLogs(ctx) })
	a.router.OnPageActive(view.PageProfile, func(ctx context.Context) { a.showSessionProfile() })
}

func (a *App) isLoggedIn() bool {
	return a.sessions.LoggedIn()
}

func (a *App) status() string {
	s, ok := a.sessions.Current()
	if !ok {
		return string(a.router.Location())
	}
	return s.Username + " " + string(a.router.Location())
}

// Start restores the cached identity, if any, and resolves the initial
// view: an optimistic dashboard entry for a restored session, the login
// view otherwise. The restored identity is advisory; the dashboard entry
// triggers the identity fetch that confirms or ends it.
func (a *App) Start(ctx context.Context) {
	if _, err := a.sessions.RestoreFromCache(ctx); err != nil {
		if !errors.Is(err, session.ErrCacheAbsent) {
			a.log.Warn(ctx, "restoring cached identity", "error", err)
		}
		a.router.Navigate(ctx, router.KeyLogin)
		return
	}
	a.router.Navigate(ctx, router.KeyDashboard)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Start(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	ctx := context.Background()
	if err := a.api.Close(); err != nil {
		a.log.Warn(ctx, "closing api client", "error", err)
	}
	if err := a.repos.DB.Close(); err != nil {
		a.log.Warn(ctx, "closing identity cache", "error", err)
	}
}
