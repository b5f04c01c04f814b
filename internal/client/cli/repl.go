package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Go(ctx context.Context, key string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Refresh(ctx context.Context) error
	Todos(ctx context.Context) error
	AddTodo(ctx context.Context, task string) error
	SetTodoDone(ctx context.Context, id string, done bool) error
	RemoveTodo(ctx context.Context, id string) error
	Logs(ctx context.Context) error
	LogWorkout(ctx context.Context) error
	Pose(ctx context.Context, exercise string) error
}

// runREPL starts a simple read–eval–print loop for the FitCoach CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - go <route>     — navigate (dashboard, dashboard/diet, ...)
//	  - refresh        — reload all dashboard data
//	  - profile        — show the current profile
//	  - edit           — edit the profile
//	  - todos          — list to-dos
//	  - todo <task>    — add a to-do
//	  - done <id>      — mark a to-do complete
//	  - undo <id>      — mark a to-do incomplete
//	  - rm <id>        — delete a to-do
//	  - logs           — show workout logs
//	  - log            — record a workout
//	  - pose <name>    — form feedback for an exercise
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fit> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: go <route>, refresh, profile, edit, todos, todo, done, undo, rm, logs, log, pose, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <route>")
				continue
			}
			_ = a.Go(ctx, args[0])

		case "refresh":
			_ = a.Refresh(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "todos":
			_ = a.Todos(ctx)

		case "todo":
			if len(args) == 0 {
				printlnFn("Usage: todo <task>")
				continue
			}
			_ = a.AddTodo(ctx, strings.Join(args, " "))

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.SetTodoDone(ctx, args[0], true)

		case "undo":
			if len(args) == 0 {
				printlnFn("Usage: undo <id>")
				continue
			}
			_ = a.SetTodoDone(ctx, args[0], false)

		case "rm":
			if len(args) == 0 {
				printlnFn("Usage: rm <id>")
				continue
			}
			_ = a.RemoveTodo(ctx, args[0])

		case "logs":
			_ = a.Logs(ctx)

		case "log":
			_ = a.LogWorkout(ctx)

		case "pose":
			if len(args) == 0 {
				printlnFn("Usage: pose <exercise>")
				continue
			}
			_ = a.Pose(ctx, strings.Join(args, " "))

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
