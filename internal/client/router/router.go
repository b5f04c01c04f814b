// Package router resolves location keys into views, applying the
// authentication and admin guards before any view becomes active.
package router

import (
	"context"
	"sync"

	"github.com/aigymlabs/fitcoach/internal/client/session"
	"github.com/aigymlabs/fitcoach/internal/client/view"
	"github.com/aigymlabs/fitcoach/internal/logging"
)

// SessionReader is the slice of the session store the router consults.
type SessionReader interface {
	Current() (session.Session, bool)
}

// decision is the outcome of one pure resolution step: either a route to
// render or a redirect key to re-resolve, plus whether the admin guard
// rejected the original key.
type decision struct {
	route    Route
	redirect Key
	denied   bool
}

// resolve applies the guard rules for a single key. It never fails: unknown
// or unreachable keys collapse into a redirect toward the default for the
// current authentication state.
func resolve(key Key, loggedIn, isAdmin bool) decision {
	if key == "" {
		if loggedIn {
			return decision{redirect: KeyDashboard}
		}
		return decision{redirect: KeyLogin}
	}

	r, ok := Lookup(key)
	if !ok {
		if loggedIn {
			return decision{redirect: KeyDashboard}
		}
		return decision{redirect: KeyLogin}
	}

	if !loggedIn && r.RequiresAuth {
		return decision{redirect: KeyLogin}
	}
	if loggedIn && !r.RequiresAuth {
		return decision{redirect: KeyDashboard}
	}
	if r.RequiresAdmin && !isAdmin {
		return decision{redirect: KeyDashboard, denied: true}
	}

	return decision{route: r}
}

// Router turns location changes into view activations. It owns the current
// location; redirects rewrite it and re-resolve until a reachable route is
// found.
type Router struct {
	mu       sync.Mutex
	sessions SessionReader
	views    *view.Manager
	log      logging.Logger
	notify   func(string)
	refresh  map[view.ID]func(context.Context)
	onEnter  func(context.Context)
	location Key
}

func New(sessions SessionReader, views *view.Manager, notify func(string), log logging.Logger) *Router {
	if notify == nil {
		notify = func(string) {}
	}
	return &Router{
		sessions: sessions,
		views:    views,
		log:      log,
		notify:   notify,
		refresh:  map[view.ID]func(context.Context){},
	}
}

// OnEnterDashboard registers the hook invoked when the dashboard container
// becomes active after not being so. Wired to the data orchestrator.
func (r *Router) OnEnterDashboard(fn func(context.Context)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEnter = fn
}

// OnPageActive registers a refresh hook for a dashboard detail page, run
// each time that page newly becomes the active one.
func (r *Router) OnPageActive(page view.ID, fn func(context.Context)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refresh[page] = fn
}

// Location returns the current, post-redirect location key.
func (r *Router) Location() Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

// Navigate sets the location and resolves it to an active view. Guard
// redirects are followed internally; the method never returns an error and
// always leaves a reachable view active.
func (r *Router) Navigate(ctx context.Context, key Key) {
	r.mu.Lock()

	loggedIn, isAdmin := false, false
	if s, ok := r.sessions.Current(); ok {
		loggedIn, isAdmin = true, s.IsAdmin
	}

	d := resolve(key, loggedIn, isAdmin)
	// Redirect chains are short: one guard redirect lands on a default key
	// that always resolves. The bound protects against table mistakes.
	for i := 0; d.redirect != "" && i < 4; i++ {
		if d.denied {
			r.notify("Access denied: admin area requires administrator rights.")
		}
		key = d.redirect
		d = resolve(key, loggedIn, isAdmin)
	}
	route := d.route
	r.location = route.Key

	prevTop, _ := r.views.Active(view.GroupMain)
	prevPage, hadPage := r.views.Active(view.GroupDetail)

	if err := r.views.Activate(route.TopView); err != nil {
		r.log.Error(ctx, "activate view", "view", route.TopView, "error", err)
	}
	if route.Page != "" {
		if err := r.views.Activate(route.Page); err != nil {
			r.log.Error(ctx, "activate page", "page", route.Page, "error", err)
		}
	}

	enter := route.TopView == view.Dashboard && prevTop != view.Dashboard
	pageChanged := route.Page != "" && (!hadPage || prevPage != route.Page)
	onEnter := r.onEnter
	pageFn := r.refresh[route.Page]
	r.mu.Unlock()

	if enter && onEnter != nil {
		onEnter(ctx)
	}
	if pageChanged && pageFn != nil {
		pageFn(ctx)
	}
}

// Refresh re-resolves the current location, used after session state
// changes (login, logout, expiry) so guards are re-evaluated.
func (r *Router) Refresh(ctx context.Context) {
	r.Navigate(ctx, r.Location())
}
