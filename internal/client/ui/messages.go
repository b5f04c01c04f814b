package ui

import (
	"fmt"
	"io"
	"sync"
)

// Messages is the sink for user-facing notices. Each failure or status
// change yields exactly one message; callers decide when something is worth
// saying.
type Messages struct {
	mu   sync.Mutex
	w    io.Writer
	last string
}

func NewMessages(w io.Writer) *Messages {
	return &Messages{w: w}
}

// Notify writes an attention-grabbing notice.
func (m *Messages) Notify(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = msg
	fmt.Fprintf(m.w, "! %s\n", msg)
}

// Success writes a confirmation after an operation completed.
func (m *Messages) Success(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = msg
	fmt.Fprintf(m.w, "%s\n", msg)
}

// Last returns the most recent message, useful in tests.
func (m *Messages) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
