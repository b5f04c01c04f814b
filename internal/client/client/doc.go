// Package client contains client-side building blocks for FitCoach.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the FitCoach backend: Login/Register/Logout, the profile
//     endpoints, dashboard data (diet plan, workout recommendations),
//     workout logs, and the to-do list.
//  2. A concrete HTTP implementation (see HTTPClient) that manages a
//     cookie-backed session and maps HTTP status codes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     for the CLI, wiring an SQLite database and applying embedded goose
//     migrations for the identity cache.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound,
// ErrValidation.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated
// otherwise. All operations accept context.Context and must honor
// cancellation/timeouts.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - DB helpers: InitDatabase, RunMigrations
//   - Errors:     ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrValidation
package client
