package timetable

import (
	"context"
	"testing"
)

// at builds a coordinate.
func at(day, slot string) Coordinate {
	return Coordinate{Day: day, Slot: slot}
}

// makeSection creates a section with the given ID, name, and blocks.
func makeSection(id int64, name string, blocks ...Coordinate) *Section {
	return &Section{
		ID:         id,
		Name:       name,
		Label:      "T01",
		Instructor: "Teacher",
		Location:   "Room 1",
		Blocks:     blocks,
	}
}

// newTestSession creates a session on the default layout with a small
// palette so wraparound is easy to hit.
func newTestSession(t *testing.T, palette ...string) *Session {
	t.Helper()
	s, err := NewSession(nil, palette)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// assertConsistent checks that grid occupancy equals the union of the
// selected sections' blocks.
func assertConsistent(t *testing.T, s *Session) {
	t.Helper()
	want := make(map[Coordinate]int64)
	for _, sec := range s.Selected() {
		for _, b := range sec.Blocks {
			want[b] = sec.ID
		}
	}
	s.Grid().ForEachValidCoordinate(func(c Coordinate, cell Cell) {
		id, selected := want[c]
		if cell.Occupied != selected {
			t.Errorf("%s occupied=%v, selected=%v", c, cell.Occupied, selected)
			return
		}
		if selected && cell.Section.ID != id {
			t.Errorf("%s owned by %d, want %d", c, cell.Section.ID, id)
		}
	})
}

// fakeLookup returns canned sections and counts calls.
type fakeLookup struct {
	sections []Section
	err      error
	calls    int
}

func (f *fakeLookup) FetchCandidates(_ context.Context, _, _ string) ([]Section, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.sections, nil
}

// recordingSink records sink notifications.
type recordingSink struct {
	updates  [][]CellView
	clears   int
	failures []string
}

func (r *recordingSink) Update(cells []CellView)     { r.updates = append(r.updates, cells) }
func (r *recordingSink) Clear()                      { r.clears++ }
func (r *recordingSink) LookupFailed(message string) { r.failures = append(r.failures, message) }
