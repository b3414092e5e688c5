package checkpoint

import (
	"context"
	"testing"
	"time"

	"mcarve/internal/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.Paths.ProjectsDir = dir
	cfg.Paths.LogDir = dir

	store, err := Open(&cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testDocument(project string) *Document {
	return &Document{
		Project:   project,
		Mode:      ModeAll,
		DataKind:  KindDEM,
		TargetCRS: "EPSG:6677",
		OffsetX:   -36000,
		OffsetY:   -29000,
		BatchSize: 10,
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("tokyo")
	doc.Stage = StageReproject
	doc.ReprojectCursor = 7
	if err := store.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	if doc.UpdatedAt.IsZero() {
		t.Fatal("save must refresh the timestamp")
	}

	loaded, err := store.Load(ctx, "tokyo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected document")
	}
	if loaded.ReprojectCursor != 7 || loaded.Stage != StageReproject {
		t.Fatalf("unexpected document: %+v", loaded)
	}
	if loaded.HasFloor() {
		t.Fatal("floor must be unset until frozen")
	}
}

func TestSaveOverwritesWholeDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := testDocument("osaka")
	doc.SetFloor(-12)
	if err := store.Save(ctx, doc); err != nil {
		t.Fatal(err)
	}

	doc.Stage = StageGenerate
	doc.GenerateCursor = 3
	doc.RegionCount = 41
	if err := store.Save(ctx, doc); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load(ctx, "osaka")
	if err != nil {
		t.Fatal(err)
	}
	if loaded.GenerateCursor != 3 || loaded.RegionCount != 41 {
		t.Fatalf("overwrite lost fields: %+v", loaded)
	}
	if !loaded.HasFloor() || *loaded.Floor != -12 {
		t.Fatalf("floor lost on overwrite: %+v", loaded.Floor)
	}
}

func TestLoadAbsentReturnsNil(t *testing.T) {
	store := newTestStore(t)
	doc, err := store.Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("absent document must not error: %v", err)
	}
	if doc != nil {
		t.Fatalf("expected nil, got %+v", doc)
	}
}

func TestLoadCorruptDocumentFails(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO checkpoints (project, mode, data_kind, target_crs, batch_size, updated_at)
         VALUES ('broken', 'teleport', 'dem', 'EPSG:6677', 10, ?)`,
		time.Now().UTC().Format(timeLayout))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(ctx, "broken"); err == nil {
		t.Fatal("expected corrupt checkpoint to fail an explicit load")
	}
}

func TestListSkipsCorruptRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testDocument("good")); err != nil {
		t.Fatal(err)
	}
	_, err := store.db.ExecContext(ctx,
		`INSERT INTO checkpoints (project, mode, data_kind, target_crs, batch_size, updated_at)
         VALUES ('bad', 'teleport', 'dem', 'EPSG:6677', 10, ?)`,
		time.Now().UTC().Format(timeLayout))
	if err != nil {
		t.Fatal(err)
	}

	docs, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Project != "good" {
		t.Fatalf("expected only the valid document, got %+v", docs)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testDocument("gone")); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatalf("second delete must be a no-op: %v", err)
	}
	doc, err := store.Load(ctx, "gone")
	if err != nil || doc != nil {
		t.Fatalf("document should be gone, got %+v err=%v", doc, err)
	}
}

func TestSaveRejectsInvalidDocument(t *testing.T) {
	store := newTestStore(t)
	doc := testDocument("bad-batch")
	doc.BatchSize = 0
	if err := store.Save(context.Background(), doc); err == nil {
		t.Fatal("expected validation failure")
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	store := newTestStore(t)
	if err := store.applyMigrations(context.Background()); err != nil {
		t.Fatalf("re-applying migrations must be safe: %v", err)
	}
}
