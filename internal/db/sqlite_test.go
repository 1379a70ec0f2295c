package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/horario/internal/timetable"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func at(day, slot string) timetable.Coordinate {
	return timetable.Coordinate{Day: day, Slot: slot}
}

func testSections() []timetable.Section {
	return []timetable.Section{
		{
			ID: 0, Name: "MAT001 - Calculus I", Label: "01", Instructor: "Ada", Code: "24M12",
			Schedule: "Monday and Wednesday from 07:00 to 08:45", Location: "Room 101",
			Blocks: []timetable.Coordinate{at("Wednesday", "07:55"), at("Monday", "07:00"), at("Monday", "07:55"), at("Wednesday", "07:00")},
		},
		{
			ID: 1, Name: "FIS002 - Physics", Label: "01", Instructor: "Alan", Code: "2M1",
			Schedule: "Monday from 07:00 to 07:50", Location: "Lab",
			Blocks: []timetable.Coordinate{at("Monday", "07:00")},
		},
		{
			ID: 2, Name: "QUI003 - Chemistry", Label: "02", Code: "bad", Schedule: "invalid format",
		},
	}
}

func TestReplaceSectionsAndCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.ReplaceSections(ctx, testSections()); err != nil {
		t.Fatalf("ReplaceSections: %v", err)
	}
	n, err := repo.CountSections(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	// Replacing swaps the whole catalog.
	if err := repo.ReplaceSections(ctx, testSections()[:1]); err != nil {
		t.Fatalf("second ReplaceSections: %v", err)
	}
	if n, _ := repo.CountSections(ctx); n != 1 {
		t.Errorf("count after replace = %d, want 1", n)
	}
}

func TestFindSections(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if err := repo.ReplaceSections(ctx, testSections()); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindSections(ctx, at("Monday", "07:00"))
	if err != nil {
		t.Fatalf("FindSections: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("sections = %d, want 2", len(got))
	}
	if got[0].ID != 0 || got[1].ID != 1 {
		t.Errorf("order = %d, %d", got[0].ID, got[1].ID)
	}

	first := got[0]
	want := testSections()[0]
	if first.Name != want.Name || first.Instructor != want.Instructor || first.Code != want.Code ||
		first.Schedule != want.Schedule || first.Location != want.Location || first.Label != want.Label {
		t.Errorf("section = %+v", first)
	}
	if len(first.Blocks) != len(want.Blocks) {
		t.Fatalf("blocks = %v", first.Blocks)
	}
	for i := range want.Blocks {
		if first.Blocks[i] != want.Blocks[i] {
			t.Errorf("block %d = %s, want %s (order must be kept)", i, first.Blocks[i], want.Blocks[i])
		}
	}
}

func TestFindSections_Empty(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.FindSections(context.Background(), at("Saturday", "21:15"))
	if err != nil {
		t.Fatalf("FindSections: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}
