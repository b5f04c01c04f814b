package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Go(ctx context.Context, key string) error {
	f.calls = append(f.calls, "go")
	f.arg = key
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) EditProfile(ctx context.Context) error {
	f.calls = append(f.calls, "edit")
	return nil
}
func (f *fakeExec) Refresh(ctx context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) Todos(ctx context.Context) error { f.calls = append(f.calls, "todos"); return nil }
func (f *fakeExec) AddTodo(ctx context.Context, task string) error {
	f.calls = append(f.calls, "todo")
	f.arg = task
	return nil
}
func (f *fakeExec) SetTodoDone(ctx context.Context, id string, done bool) error {
	if done {
		f.calls = append(f.calls, "done")
	} else {
		f.calls = append(f.calls, "undo")
	}
	f.arg = id
	return nil
}
func (f *fakeExec) RemoveTodo(ctx context.Context, id string) error {
	f.calls = append(f.calls, "rm")
	f.arg = id
	return nil
}
func (f *fakeExec) Logs(ctx context.Context) error { f.calls = append(f.calls, "logs"); return nil }
func (f *fakeExec) LogWorkout(ctx context.Context) error {
	f.calls = append(f.calls, "log")
	return nil
}
func (f *fakeExec) Pose(ctx context.Context, exercise string) error {
	f.calls = append(f.calls, "pose")
	f.arg = exercise
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"go dashboard/diet",
		"refresh",
		"todos",
		"todo drink water",
		"done 3",
		"logs",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "go", "refresh", "todos", "todo", "done", "logs"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_MultiWordArgs(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("todo buy running shoes\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if exec.arg != "buy running shoes" {
		t.Fatalf("todo arg = %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("go\ntodo\ndone\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
