package interfaces

import "context"

// SnapshotStoreInterface keeps the latest encoded ledger snapshot.
// Load returns nil data and no error when nothing was saved yet.
type SnapshotStoreInterface interface {
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, error)
	Name() string
	Close() error
}
