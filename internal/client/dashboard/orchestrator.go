// Package dashboard loads everything the dashboard shows: a fresh identity
// first, then the diet plan, workout recommendations and to-do list as one
// joined unit.
package dashboard

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/aigymlabs/fitcoach/internal/client/client"
	"github.com/aigymlabs/fitcoach/internal/client/models"
	"github.com/aigymlabs/fitcoach/internal/client/session"
	"github.com/aigymlabs/fitcoach/internal/logging"
)

// Presenter receives loaded data for display. Implementations render only;
// they never mutate session state.
type Presenter interface {
	ShowDietPlan(days []models.DietDay)
	ShowWorkouts(workouts []models.Workout)
	ShowTodos(todos []models.Todo)
	ShowLogs(logs []models.WorkoutLog)
}

// Orchestrator coordinates the dashboard fetch sequence. All-or-nothing
// join policy: if any of the three joined fetches fails, none of their
// results is applied and previously displayed data stays as it was.
type Orchestrator struct {
	api      client.Client
	sessions *session.Store
	out      Presenter
	notify   func(string)
	toLogin  func(context.Context)
	onLogs   func() bool
	log      logging.Logger

	// gen invalidates in-flight refreshes: results are discarded when the
	// generation moved on (logout, navigation away) before they landed.
	gen atomic.Uint64
}

func New(api client.Client, sessions *session.Store, out Presenter, notify func(string), toLogin func(context.Context), logsActive func() bool, log logging.Logger) *Orchestrator {
	if notify == nil {
		notify = func(string) {}
	}
	if toLogin == nil {
		toLogin = func(context.Context) {}
	}
	if logsActive == nil {
		logsActive = func() bool { return false }
	}
	return &Orchestrator{
		api:      api,
		sessions: sessions,
		out:      out,
		notify:   notify,
		toLogin:  toLogin,
		onLogs:   logsActive,
		log:      log,
	}
}

// Invalidate marks every in-flight refresh stale. Called on logout and when
// the user navigates away from the dashboard.
func (o *Orchestrator) Invalidate() {
	o.gen.Add(1)
}

// Refresh runs the full dashboard load: identity fetch, then the joined
// data fetches. It returns the classification error for callers that log
// it; all user-visible handling happens inside.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	s, ok := o.sessions.Current()
	if !ok || s.UserID == 0 {
		o.toLogin(ctx)
		return session.ErrNoSession
	}

	gen := o.gen.Load()

	profile, err := o.api.UserProfile(ctx)
	if err != nil {
		return o.fail(ctx, gen, err, "Could not load your profile.")
	}
	if o.stale(gen) {
		return nil
	}
	if err := o.sessions.MergeFreshProfile(ctx, profile); err != nil {
		o.log.Warn(ctx, "merge profile", "error", err)
		o.toLogin(ctx)
		return err
	}

	var (
		diet     []models.DietDay
		workouts []models.Workout
		todos    []models.Todo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		diet, err = o.api.WeeklyDietPlan(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		workouts, err = o.api.WorkoutRecommendations(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		todos, err = o.api.Todos(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return o.fail(ctx, gen, err, "Could not load dashboard data. Please try again.")
	}
	if o.stale(gen) {
		return nil
	}

	o.out.ShowDietPlan(diet)
	o.out.ShowWorkouts(workouts)
	o.out.ShowTodos(todos)

	if o.onLogs() {
		o.RefreshLogs(ctx)
	}
	return nil
}

// RefreshLogs loads the workout log history. Also wired to activation of
// the logs page.
func (o *Orchestrator) RefreshLogs(ctx context.Context) error {
	gen := o.gen.Load()
	logs, err := o.api.WorkoutLogs(ctx)
	if err != nil {
		return o.fail(ctx, gen, err, "Could not load workout logs.")
	}
	if o.stale(gen) {
		return nil
	}
	o.out.ShowLogs(logs)
	return nil
}

func (o *Orchestrator) stale(gen uint64) bool {
	return o.gen.Load() != gen
}

// fail classifies a fetch error. An unauthorized response ends the session:
// clear, notify once, redirect to login. Anything else is transient and
// leaves both session and displayed data untouched.
func (o *Orchestrator) fail(ctx context.Context, gen uint64, err error, msg string) error {
	if o.stale(gen) {
		return nil
	}
	if errors.Is(err, client.ErrUnauthorized) {
		o.Invalidate()
		if cerr := o.sessions.Clear(ctx); cerr != nil {
			o.log.Warn(ctx, "clear session", "error", cerr)
		}
		o.notify("Your session has expired. Please log in again.")
		o.toLogin(ctx)
		return err
	}
	o.log.Warn(ctx, "dashboard fetch failed", "error", err)
	o.notify(msg)
	return err
}
