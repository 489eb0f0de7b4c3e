package badger

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/selera/menurec/core"
	"github.com/selera/menurec/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend    *Backend
	versionSeq *badger.Sequence
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository opens a BadgerDB database at path and returns a
// catalog repository backed by it. The repository owns the database and
// closes it on Close.
func NewCatalogRepository(path string) (storage.CatalogRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	repo, err := newCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return repo, nil
}

func newCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	versionSeq, err := backend.GetSequence(snapshotVersionSeq)
	if err != nil {
		return nil, err
	}

	return &CatalogRepository{
		backend:    backend,
		versionSeq: versionSeq,
	}, nil
}

// Close releases the version sequence and closes the database.
func (r *CatalogRepository) Close() error {
	err := r.versionSeq.Release()
	if closeErr := r.backend.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// WithTransaction delegates to the backend.
func (r *CatalogRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveSnapshot persists a snapshot and promotes it to current in one
// transaction. Readers observe either the old or the new version, never a
// partial state.
func (r *CatalogRepository) SaveSnapshot(ctx context.Context, snapshot *core.CatalogSnapshot) error {
	if snapshot == nil || len(snapshot.Records) == 0 {
		return storage.ErrEmptySnapshot
	}

	if snapshot.Metadata.Version == 0 {
		version, err := r.nextVersion()
		if err != nil {
			return err
		}
		snapshot.Metadata.Version = version
	}
	if snapshot.Metadata.LastUpdated.IsZero() {
		snapshot.Metadata.LastUpdated = time.Now().UTC()
	}
	snapshot.Metadata.TotalRecords = len(snapshot.Records)

	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeSnapshotKey(snapshot.Metadata.Version), storage.MarshalCatalogSnapshot(snapshot)); err != nil {
			return err
		}
		if err := tx.Set(makeSnapshotMetaKey(snapshot.Metadata.Version), storage.MarshalSnapshotMetadata(&snapshot.Metadata)); err != nil {
			return err
		}
		if err := tx.Set(makeCurrentVersionKey(), storage.MarshalID(snapshot.Metadata.Version)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// CurrentSnapshot retrieves the snapshot the current pointer refers to.
func (r *CatalogRepository) CurrentSnapshot(ctx context.Context) (*core.CatalogSnapshot, error) {
	var snapshot *core.CatalogSnapshot

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		version, err := r.readCurrentVersion(tx)
		if err != nil {
			return err
		}
		snapshot, err = r.readSnapshot(tx, version)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// GetSnapshot retrieves a snapshot by its version.
func (r *CatalogRepository) GetSnapshot(ctx context.Context, version core.ID) (*core.CatalogSnapshot, error) {
	var snapshot *core.CatalogSnapshot

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		snapshot, err = r.readSnapshot(tx, version)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ListVersions returns metadata for every stored snapshot, most recent first.
func (r *CatalogRepository) ListVersions(ctx context.Context) ([]core.SnapshotMetadata, error) {
	var versions []core.SnapshotMetadata

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(snapshotMetaPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				metadata, err := storage.UnmarshalSnapshotMetadata(val)
				if err != nil {
					return err
				}
				versions = append(versions, *metadata)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(versions, func(a, b core.SnapshotMetadata) int {
		return b.LastUpdated.Compare(a.LastUpdated)
	})
	return versions, nil
}

// PruneVersions deletes all snapshots except the current one and the keep
// most recent others. Returns the number of deleted snapshots.
func (r *CatalogRepository) PruneVersions(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	versions, err := r.ListVersions(ctx)
	if err != nil {
		return 0, err
	}

	var current core.ID
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		current, err = r.readCurrentVersion(tx)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}

	var candidates []core.ID
	for _, metadata := range versions {
		if metadata.Version != current {
			candidates = append(candidates, metadata.Version)
		}
	}
	if len(candidates) <= keep {
		return 0, nil
	}
	doomed := candidates[keep:]

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		for _, version := range doomed {
			if err := tx.Delete(makeSnapshotKey(version)); err != nil {
				return err
			}
			if err := tx.Delete(makeSnapshotMetaKey(version)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}
	return len(doomed), nil
}

func (r *CatalogRepository) nextVersion() (core.ID, error) {
	next, err := r.versionSeq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if next == 0 {
		next, err = r.versionSeq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(next), nil
}

func (r *CatalogRepository) readCurrentVersion(tx *badger.Txn) (core.ID, error) {
	item, err := tx.Get(makeCurrentVersionKey())
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, storage.ErrNotFound
		}
		return 0, err
	}

	var version core.ID
	err = item.Value(func(val []byte) error {
		var err error
		version, err = storage.UnmarshalID(val)
		return err
	})
	return version, err
}

func (r *CatalogRepository) readSnapshot(tx *badger.Txn, version core.ID) (*core.CatalogSnapshot, error) {
	item, err := tx.Get(makeSnapshotKey(version))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}

	var snapshot *core.CatalogSnapshot
	err = item.Value(func(val []byte) error {
		var err error
		snapshot, err = storage.UnmarshalCatalogSnapshot(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
