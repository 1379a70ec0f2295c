package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/horario/internal/timetable"
)

func testGrid() Grid {
	return Grid{
		Width:    60,
		Height:   8,
		ColWidth: 10,
		Days:     []string{"Monday", "Tuesday"},
		Rows: []timetable.Row{
			{Label: "07:00"},
			{Label: "07:50", Interval: true},
			{Label: "07:55"},
		},
		Cells: map[timetable.Coordinate]timetable.CellView{
			{Day: "Monday", Slot: "07:00"}: {Occupied: true, ShortName: "IMD0030", Color: "#7aa2f7", SectionID: 1},
			{Day: "Tuesday", Slot: "07:00"}: {Occupied: false, ShortName: "stale"},
		},
		Cursor: timetable.Coordinate{Day: "Tuesday", Slot: "07:55"},
		Styles: GridStyles{
			Section: func(color string, width int) lipgloss.Style {
				return lipgloss.NewStyle().Width(width).Background(lipgloss.Color(color))
			},
		},
	}
}

func TestRenderGridDrawsHeaderAndCells(t *testing.T) {
	out := ansi.Strip(RenderGrid(testGrid()))
	for _, want := range []string{TimeColumnLabel, "Mon", "*Tue*", "07:00", "07:55", "IMD0030", IntervalLabel, "+"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "stale") {
		t.Error("free cell drew a section name")
	}
	if strings.Contains(out, "*Mon*") {
		t.Error("only the cursor's day is marked")
	}
}

func TestRenderGridFitsBox(t *testing.T) {
	g := testGrid()
	lines := strings.Split(RenderGrid(g), "\n")
	if len(lines) != g.Height {
		t.Fatalf("lines = %d, want %d", len(lines), g.Height)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != g.Width {
			t.Errorf("line %d width = %d, want %d", i, w, g.Width)
		}
	}
}

func TestRenderGridTruncatesLongNames(t *testing.T) {
	g := testGrid()
	g.Cells = map[timetable.Coordinate]timetable.CellView{
		{Day: "Monday", Slot: "07:00"}: {Occupied: true, ShortName: "VERYLONGCODE01"},
	}
	text, _ := g.cell(timetable.Coordinate{Day: "Monday", Slot: "07:00"}, false)
	if lipgloss.Width(text) > g.ColWidth-1 {
		t.Errorf("cell %q wider than %d", text, g.ColWidth-1)
	}
	if !strings.HasSuffix(text, "…") {
		t.Errorf("cell %q not marked as truncated", text)
	}
}

func TestRenderGridEmpty(t *testing.T) {
	g := testGrid()
	g.Rows = nil
	if out := RenderGrid(g); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
	g = testGrid()
	g.Height = 0
	if out := RenderGrid(g); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestDayShortName(t *testing.T) {
	tests := map[string]string{"Saturday": "Sat", "Qua": "Qua", "": ""}
	for in, want := range tests {
		if got := DayShortName(in); got != want {
			t.Errorf("DayShortName(%q) = %q, want %q", in, got, want)
		}
	}
}
