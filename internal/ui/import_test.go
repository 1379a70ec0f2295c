package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/horario/internal/db"
	"github.com/javiermolinar/horario/internal/timetable"
)

const offeringsJSON = `[
  {
    "disciplina": "MAT001 - Calculus I",
    "turmas": [
      {"turma": "01", "docente": "Ada Lovelace", "horario": "24M12", "local": "Room 101"},
      {"turma": "02", "docente": "Alan Turing", "horario": "35T34", "local": "Room 202"}
    ]
  },
  {
    "disciplina": "FIS002 - Physics",
    "turmas": [
      {"turma": "01", "docente": "Marie Curie", "horario": "2M1", "local": "Lab 3"}
    ]
  }
]`

func writeOfferings(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "turmas.json")
	if err := os.WriteFile(path, []byte(offeringsJSON), 0o644); err != nil {
		t.Fatalf("writing offerings: %v", err)
	}
	return path
}

func TestImportSections(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	source := writeOfferings(t, dir)

	store, err := db.New(filepath.Join(dir, "catalog.db"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	defer func() { _ = store.Close() }()

	count, err := importSections(ctx, store, source)
	if err != nil {
		t.Fatalf("importSections failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("imported %d sections, want 3", count)
	}

	found, err := store.FindSections(ctx, timetable.Coordinate{Day: "Monday", Slot: "07:00"})
	if err != nil {
		t.Fatalf("FindSections: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("Monday 07:00 offers %d sections, want 2", len(found))
	}

	// A second import replaces rather than appends.
	if _, err := importSections(ctx, store, source); err != nil {
		t.Fatalf("re-import failed: %v", err)
	}
	n, err := store.CountSections(ctx)
	if err != nil {
		t.Fatalf("CountSections: %v", err)
	}
	if n != 3 {
		t.Errorf("catalog holds %d sections after re-import, want 3", n)
	}
}

func TestImportSections_MissingFile(t *testing.T) {
	dir := t.TempDir()
	store, err := db.New(filepath.Join(dir, "catalog.db"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := importSections(context.Background(), store, filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing offerings file")
	}
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := resolvePath("~/turmas.json")
	if err != nil {
		t.Fatalf("resolvePath: %v", err)
	}
	if want := filepath.Join(home, "turmas.json"); got != want {
		t.Errorf("resolvePath = %q, want %q", got, want)
	}

	if _, err := resolvePath("  "); err == nil {
		t.Error("expected error for empty path")
	}
}
