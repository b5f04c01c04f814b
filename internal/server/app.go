// Package server initializes and runs the FitCoach API server. It opens
// the database, bootstraps the administrator account, and serves the
// HTTP API until the process is told to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aigymlabs/fitcoach/internal/logging"
	"github.com/aigymlabs/fitcoach/internal/server/config"
	"github.com/aigymlabs/fitcoach/internal/server/httpapi"
	"github.com/aigymlabs/fitcoach/internal/server/repositories/users"
	"github.com/aigymlabs/fitcoach/internal/server/services"
	"github.com/aigymlabs/fitcoach/internal/server/storage"

	_ "modernc.org/sqlite"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	repos  *storage.Repositories
	api    *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	generated, err := c.EnsureSecretKey()
	if err != nil {
		return nil, fmt.Errorf("secret key error: %w", err)
	}
	if generated {
		logger.Warn(ctx, "secret_key not configured, generated an ephemeral one; sessions will not survive a restart")
	}

	repos, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	userService := services.NewUserService(repos.DB, users.SQLiteFactory, logger)
	if err := userService.EnsureAdmin(ctx, c.AdminUsername, c.AdminPassword); err != nil {
		_ = repos.DB.Close()
		return nil, fmt.Errorf("admin bootstrap error: %w", err)
	}

	api := httpapi.New(c, userService, repos.Logs, repos.Todos, logger)

	return &App{config: c, logger: logger, repos: repos, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.Addr,
		Handler: app.api.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting HTTP server", "addr", app.config.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return app.repos.DB.Close()
}
