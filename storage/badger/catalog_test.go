package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/selera/menurec/core"
	"github.com/selera/menurec/storage"
)

func testSnapshot(titles ...string) *core.CatalogSnapshot {
	snapshot := &core.CatalogSnapshot{
		Metadata: core.SnapshotMetadata{
			SchemaTag:      "v1",
			EmbeddingModel: "embeddinggemma",
		},
	}
	for i, title := range titles {
		snapshot.Records = append(snapshot.Records, core.MenuRecord{
			Id:        core.ID(i + 1),
			Title:     title,
			Available: true,
			Vector:    []float32{float32(i), 1.0},
		})
	}
	return snapshot
}

func TestSaveAndCurrentSnapshot(t *testing.T) {
	repo, err := NewMemoryCatalogRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	// No snapshot saved yet
	_, err = repo.CurrentSnapshot(ctx)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	snapshot := testSnapshot("Soto Ayam", "Rendang Sapi")
	if err := repo.SaveSnapshot(ctx, snapshot); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	if snapshot.Metadata.Version == 0 {
		t.Fatal("Expected non-zero version after save")
	}
	if snapshot.Metadata.TotalRecords != 2 {
		t.Fatalf("Expected TotalRecords 2, got %d", snapshot.Metadata.TotalRecords)
	}
	if snapshot.Metadata.LastUpdated.IsZero() {
		t.Fatal("Expected LastUpdated to be set")
	}

	current, err := repo.CurrentSnapshot(ctx)
	if err != nil {
		t.Fatalf("Failed to load current snapshot: %v", err)
	}
	if len(current.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(current.Records))
	}
	if current.Records[0].Title != "Soto Ayam" {
		t.Fatalf("Expected 'Soto Ayam', got '%s'", current.Records[0].Title)
	}
	if current.Metadata.Version != snapshot.Metadata.Version {
		t.Fatalf("Expected version %d, got %d", snapshot.Metadata.Version, current.Metadata.Version)
	}
}

func TestSaveSnapshotEmpty(t *testing.T) {
	repo, err := NewMemoryCatalogRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	err = repo.SaveSnapshot(context.Background(), &core.CatalogSnapshot{})
	if !errors.Is(err, storage.ErrEmptySnapshot) {
		t.Fatalf("Expected ErrEmptySnapshot, got %v", err)
	}
}

func TestSaveSnapshotPromotesCurrent(t *testing.T) {
	repo, err := NewMemoryCatalogRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	first := testSnapshot("Nasi Goreng")
	if err := repo.SaveSnapshot(ctx, first); err != nil {
		t.Fatalf("Failed to save first snapshot: %v", err)
	}

	second := testSnapshot("Nasi Goreng", "Gado-Gado")
	if err := repo.SaveSnapshot(ctx, second); err != nil {
		t.Fatalf("Failed to save second snapshot: %v", err)
	}

	current, err := repo.CurrentSnapshot(ctx)
	if err != nil {
		t.Fatalf("Failed to load current snapshot: %v", err)
	}
	if current.Metadata.Version != second.Metadata.Version {
		t.Fatalf("Expected current version %d, got %d", second.Metadata.Version, current.Metadata.Version)
	}
	if len(current.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(current.Records))
	}

	// The first version stays retrievable until pruned
	old, err := repo.GetSnapshot(ctx, first.Metadata.Version)
	if err != nil {
		t.Fatalf("Failed to load old snapshot: %v", err)
	}
	if len(old.Records) != 1 {
		t.Fatalf("Expected 1 record in old snapshot, got %d", len(old.Records))
	}
}

func TestGetSnapshotNotFound(t *testing.T) {
	repo, err := NewMemoryCatalogRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	_, err = repo.GetSnapshot(context.Background(), core.ID(12345))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestListVersions(t *testing.T) {
	repo, err := NewMemoryCatalogRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		snapshot := testSnapshot("Soto Ayam")
		snapshot.Metadata.LastUpdated = base.Add(time.Duration(i) * time.Minute)
		if err := repo.SaveSnapshot(ctx, snapshot); err != nil {
			t.Fatalf("Failed to save snapshot %d: %v", i, err)
		}
	}

	versions, err := repo.ListVersions(ctx)
	if err != nil {
		t.Fatalf("Failed to list versions: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("Expected 3 versions, got %d", len(versions))
	}
	for i := 1; i < len(versions); i++ {
		if versions[i].LastUpdated.After(versions[i-1].LastUpdated) {
			t.Fatal("Expected versions ordered most recent first")
		}
	}
}

func TestPruneVersions(t *testing.T) {
	repo, err := NewMemoryCatalogRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	var last *core.CatalogSnapshot
	for i := 0; i < 5; i++ {
		snapshot := testSnapshot("Soto Ayam")
		snapshot.Metadata.LastUpdated = base.Add(time.Duration(i) * time.Minute)
		if err := repo.SaveSnapshot(ctx, snapshot); err != nil {
			t.Fatalf("Failed to save snapshot %d: %v", i, err)
		}
		last = snapshot
	}

	deleted, err := repo.PruneVersions(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to prune versions: %v", err)
	}
	// 5 versions, current excluded, 1 kept of the remaining 4
	if deleted != 3 {
		t.Fatalf("Expected 3 deleted, got %d", deleted)
	}

	versions, err := repo.ListVersions(ctx)
	if err != nil {
		t.Fatalf("Failed to list versions: %v", err)
	}
	if len(versions) != 2 {
		t.Fatalf("Expected 2 remaining versions, got %d", len(versions))
	}

	// The current snapshot survives pruning
	current, err := repo.CurrentSnapshot(ctx)
	if err != nil {
		t.Fatalf("Failed to load current snapshot: %v", err)
	}
	if current.Metadata.Version != last.Metadata.Version {
		t.Fatalf("Expected current version %d, got %d", last.Metadata.Version, current.Metadata.Version)
	}
}
