package cli

import (
	"context"

	"github.com/aigymlabs/fitcoach/internal/client/router"
)

// Go navigates to a route key, e.g. "dashboard" or "dashboard/diet".
// Guards apply: unauthenticated navigation lands on login, the admin page
// requires administrator rights.
func (a *App) Go(ctx context.Context, key string) error {
	a.router.Navigate(ctx, router.Key(key))
	return nil
}

// Refresh reruns the full dashboard data load for the current session.
func (a *App) Refresh(ctx context.Context) error {
	return a.orch.Refresh(ctx)
}
