// Package identity persists the cached identity snapshot: a single
// serialized record that survives restarts and lets the client attempt an
// optimistic session restore before the server has confirmed anything.
package identity

import "context"

// Repository stores at most one snapshot. Load returns common.ErrorNotFound
// when no snapshot has been saved.
type Repository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot []byte) error
	Clear(ctx context.Context) error
}
