package storage

import (
	"context"

	"github.com/selera/menurec/core"
)

// CatalogRepository provides versioned persistence for catalog snapshots.
// Implementations must be thread-safe and support concurrent access.
type CatalogRepository interface {
	// SaveSnapshot persists a snapshot under its version and atomically
	// promotes it to the current snapshot. The previous current snapshot
	// is retained under its own version until pruned.
	// Returns ErrEmptySnapshot if the snapshot contains no records.
	SaveSnapshot(ctx context.Context, snapshot *core.CatalogSnapshot) error

	// CurrentSnapshot retrieves the snapshot the current pointer refers to.
	// Returns ErrNotFound if no snapshot has been saved yet.
	CurrentSnapshot(ctx context.Context) (*core.CatalogSnapshot, error)

	// GetSnapshot retrieves a snapshot by its version.
	// Returns ErrNotFound if the version doesn't exist.
	GetSnapshot(ctx context.Context, version core.ID) (*core.CatalogSnapshot, error)

	// ListVersions returns metadata for every stored snapshot,
	// ordered by LastUpdated descending (most recent first).
	ListVersions(ctx context.Context) ([]core.SnapshotMetadata, error)

	// PruneVersions deletes all stored snapshots except the current one
	// and the keep most recent others. Returns the number of deleted snapshots.
	PruneVersions(ctx context.Context, keep int) (int, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
