// Package cli provides the interactive FitCoach command-line client.
//
// It wires configuration, the local identity cache, the HTTP API client,
// session and navigation state, and an interactive REPL. Typical flow:
// restore a cached identity, let the router pick the starting view, and
// execute user commands.
//
// Key features:
//   - Login / Register / Logout with a locally cached identity
//   - Navigation between dashboard pages with auth and admin guards
//   - Dashboard refresh: profile, weekly diet plan, workouts, to-dos
//   - Workout logging and to-do management
//   - Form feedback cues via the pose analyzer
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
