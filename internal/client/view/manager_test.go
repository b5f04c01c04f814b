package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(opts ...Option) *Manager {
	base := []Option{WithExitDurations(20*time.Millisecond, 10*time.Millisecond)}
	return NewManager(append(base, opts...)...)
}

func TestActivateUnknownView(t *testing.T) {
	m := newTestManager()
	err := m.Activate(ID("bogus"))
	require.Error(t, err)
}

func TestSingleActivePerGroup(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.Activate(Login))
	require.NoError(t, m.Activate(Dashboard))

	active, ok := m.Active(GroupMain)
	require.True(t, ok)
	assert.Equal(t, Dashboard, active)

	// The outgoing view is still visible inside the transition window.
	assert.True(t, m.Visible(Login))
	assert.True(t, m.Visible(Dashboard))

	time.Sleep(50 * time.Millisecond)
	assert.False(t, m.Visible(Login))
	assert.True(t, m.Visible(Dashboard))
}

func TestActivateIdempotent(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.Activate(PageDiet))
	require.NoError(t, m.Activate(PageDiet))

	active, ok := m.Active(GroupDetail)
	require.True(t, ok)
	assert.Equal(t, PageDiet, active)
	assert.True(t, m.Visible(PageDiet))
}

func TestReactivationDuringExitStaysVisible(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.Activate(PageLogs))
	require.NoError(t, m.Activate(PageOverview))
	// Back to logs before the exit delay fires.
	require.NoError(t, m.Activate(PageLogs))

	time.Sleep(50 * time.Millisecond)
	assert.True(t, m.Visible(PageLogs))
	active, _ := m.Active(GroupDetail)
	assert.Equal(t, PageLogs, active)
}

func TestSecondExitWindowOutlivesFirstTimer(t *testing.T) {
	m := newTestManager(WithExitDurations(200*time.Millisecond, 60*time.Millisecond))

	// Demote logs, bring it back, then demote it again. The timer from the
	// first demotion fires inside the second window and must not cut it short.
	require.NoError(t, m.Activate(PageLogs))
	require.NoError(t, m.Activate(PageOverview))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, m.Activate(PageLogs))
	require.NoError(t, m.Activate(PageDiet))

	// Past the first timer (60ms from the start), still inside the second
	// window (60ms from the re-demotion at ~20ms).
	time.Sleep(50 * time.Millisecond)
	assert.True(t, m.Visible(PageLogs))

	time.Sleep(60 * time.Millisecond)
	assert.False(t, m.Visible(PageLogs))
}

func TestGroupsAreIndependent(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.Activate(Dashboard))
	require.NoError(t, m.Activate(PageProfile))

	main, ok := m.Active(GroupMain)
	require.True(t, ok)
	assert.Equal(t, Dashboard, main)

	detail, ok := m.Active(GroupDetail)
	require.True(t, ok)
	assert.Equal(t, PageProfile, detail)
}

func TestScrollHookOnDetailOnly(t *testing.T) {
	var scrolled []ID
	m := newTestManager(WithScrollFunc(func(id ID) { scrolled = append(scrolled, id) }))

	require.NoError(t, m.Activate(Dashboard))
	require.NoError(t, m.Activate(PageWorkouts))

	assert.Equal(t, []ID{PageWorkouts}, scrolled)
}

func TestReset(t *testing.T) {
	m := newTestManager()

	require.NoError(t, m.Activate(Dashboard))
	require.NoError(t, m.Activate(PageAdmin))
	m.Reset()

	_, ok := m.Active(GroupMain)
	assert.False(t, ok)
	_, ok = m.Active(GroupDetail)
	assert.False(t, ok)
	assert.False(t, m.Visible(PageAdmin))
}
