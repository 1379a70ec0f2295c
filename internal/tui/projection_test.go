package tui

import (
	"testing"

	"github.com/javiermolinar/horario/internal/timetable"
)

func TestGridProjection_UpdateAndClear(t *testing.T) {
	p := newGridProjection()
	mon := block("Monday", "07:00")
	wed := block("Wednesday", "07:00")

	p.Update([]timetable.CellView{
		{Coordinate: mon, Occupied: true, ShortName: "CS101", Color: "#ff0000", SectionID: 1},
		{Coordinate: wed, Occupied: true, ShortName: "CS101", Color: "#ff0000", SectionID: 1},
	})
	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	cell, ok := p.Cell(mon)
	if !ok || cell.ShortName != "CS101" {
		t.Errorf("Cell(mon) = %+v, %v", cell, ok)
	}
	if got := p.Colors(); got[1] != "#ff0000" || len(got) != 1 {
		t.Errorf("Colors = %v", got)
	}

	p.Update([]timetable.CellView{{Coordinate: wed}})
	if _, ok := p.Cell(wed); ok {
		t.Error("free cell still projected")
	}

	p.LookupFailed(timetable.RetryMessage)
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len after Clear = %d", p.Len())
	}
	if msg := p.TakeFailure(); msg != "" {
		t.Errorf("Clear kept failure %q", msg)
	}
}

func TestGridProjection_TakeFailureOnce(t *testing.T) {
	p := newGridProjection()
	p.LookupFailed(timetable.RetryMessage)

	if got := p.TakeFailure(); got != timetable.RetryMessage {
		t.Fatalf("TakeFailure = %q", got)
	}
	if got := p.TakeFailure(); got != "" {
		t.Errorf("second TakeFailure = %q, want empty", got)
	}
}

func TestGridProjection_SyncReplaces(t *testing.T) {
	p := newGridProjection()
	p.Update([]timetable.CellView{{Coordinate: block("Friday", "21:15"), Occupied: true, SectionID: 9}})

	p.Sync([]timetable.CellView{
		{Coordinate: block("Monday", "07:00"), Occupied: true, SectionID: 1},
		{Coordinate: block("Monday", "07:55")},
	})
	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1", p.Len())
	}
	if _, ok := p.Cell(block("Friday", "21:15")); ok {
		t.Error("Sync kept a stale cell")
	}
}
