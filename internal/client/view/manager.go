// Package view stages show/hide transitions between mutually exclusive
// views: the top-level screens (auth flows vs. dashboard) and the dashboard
// detail pages. Transitions cross-fade: the outgoing view stays visible for
// a group-specific duration while the incoming one is already visible, but
// only one view per group is ever marked active.
package view

import (
	"fmt"
	"sync"
	"time"
)

// ID names a view.
type ID string

// Top-level views.
const (
	AuthChoice ID = "auth_choice"
	Login      ID = "login"
	Register   ID = "register"
	Dashboard  ID = "dashboard"
)

// Dashboard pages (the overview plus one detail page at a time).
const (
	PageOverview ID = "overview"
	PageProfile  ID = "profile"
	PageDiet     ID = "diet"
	PageWorkouts ID = "workouts"
	PagePose     ID = "pose"
	PageLogs     ID = "logs"
	PageAdmin    ID = "admin"
)

// Group is a set of sibling views of which at most one may be active.
type Group int

const (
	GroupMain Group = iota
	GroupDetail
)

const (
	defaultMainExit   = 500 * time.Millisecond
	defaultDetailExit = 350 * time.Millisecond
)

type groupState struct {
	members map[ID]struct{}
	// active is the view marked semantically active; at most one per group.
	active ID
	// visible also includes outgoing views inside their transition window.
	visible map[ID]bool
	// exitGen counts demotions per view so an exit timer only clears the
	// window it was started for, not a later one.
	exitGen map[ID]uint64
}

// Manager drives staged transitions. Safe for concurrent use; exit timers
// fire on their own goroutines.
type Manager struct {
	mu         sync.Mutex
	groups     map[Group]*groupState
	groupOf    map[ID]Group
	mainExit   time.Duration
	detailExit time.Duration
	scrollFn   func(ID)
}

// Option customises a Manager.
type Option func(*Manager)

// WithExitDurations overrides the transition-out delays; tests use short
// ones to keep runs fast.
func WithExitDurations(main, detail time.Duration) Option {
	return func(m *Manager) {
		m.mainExit = main
		m.detailExit = detail
	}
}

// WithScrollFunc installs the hook invoked when a detail page becomes
// active, mirroring scroll-into-view behavior.
func WithScrollFunc(fn func(ID)) Option {
	return func(m *Manager) { m.scrollFn = fn }
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		groups: map[Group]*groupState{
			GroupMain:   newGroupState(AuthChoice, Login, Register, Dashboard),
			GroupDetail: newGroupState(PageOverview, PageProfile, PageDiet, PageWorkouts, PagePose, PageLogs, PageAdmin),
		},
		groupOf:    map[ID]Group{},
		mainExit:   defaultMainExit,
		detailExit: defaultDetailExit,
	}
	for g, st := range m.groups {
		for id := range st.members {
			m.groupOf[id] = g
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func newGroupState(members ...ID) *groupState {
	st := &groupState{members: map[ID]struct{}{}, visible: map[ID]bool{}, exitGen: map[ID]uint64{}}
	for _, id := range members {
		st.members[id] = struct{}{}
	}
	return st
}

// Activate makes id the single active view of its group. The previous
// active view is immediately demoted but stays visible until its exit delay
// elapses (the cross-fade window). Re-activating the already-active view is
// a no-op beyond reconfirming visibility, so resolution stays idempotent.
func (m *Manager) Activate(id ID) error {
	m.mu.Lock()

	g, ok := m.groupOf[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("unknown view %q", id)
	}
	st := m.groups[g]

	if st.active == id {
		st.visible[id] = true
		m.mu.Unlock()
		return nil
	}

	prev := st.active
	st.active = id
	st.visible[id] = true

	if prev != "" {
		delay := m.mainExit
		if g == GroupDetail {
			delay = m.detailExit
		}
		out := prev
		st.exitGen[out]++
		gen := st.exitGen[out]
		time.AfterFunc(delay, func() {
			m.mu.Lock()
			// A view re-activated during its own exit keeps its visibility,
			// and a timer from an earlier demotion must not clear a later
			// exit window. Only the timer for the current demotion removes.
			if st.active != out && st.exitGen[out] == gen {
				delete(st.visible, out)
			}
			m.mu.Unlock()
		})
	}

	scroll := m.scrollFn
	m.mu.Unlock()

	if scroll != nil && g == GroupDetail {
		scroll(id)
	}
	return nil
}

// Active returns the view currently marked active in the group.
func (m *Manager) Active(g Group) (ID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.groups[g]
	if !ok || st.active == "" {
		return "", false
	}
	return st.active, true
}

// Visible reports whether id is in the visible set (active or still inside
// its transition window).
func (m *Manager) Visible(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groupOf[id]
	if !ok {
		return false
	}
	return m.groups[g].visible[id]
}

// Reset hides everything, used on logout so no dashboard page stays marked
// active for the next session.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, st := range m.groups {
		st.active = ""
		st.visible = map[ID]bool{}
	}
}
