package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/javiermolinar/horario/internal/timetable"
)

func TestPrintSections(t *testing.T) {
	DisableColor()
	t.Cleanup(EnableColor)

	coord := timetable.Coordinate{Day: "Monday", Slot: "07:00"}
	tests := []struct {
		name     string
		sections []timetable.Section
		want     []string
	}{
		{
			name: "empty",
			want: []string{"Monday 07:00  0 sections", timetable.EmptyMessage},
		},
		{
			name: "one section",
			sections: []timetable.Section{{
				Name:       "MAT001 - Calculus I",
				Label:      "01",
				Instructor: "Ada Lovelace",
				Schedule:   "Monday and Wednesday from 07:00 to 08:45",
				Location:   "Room 101",
			}},
			want: []string{
				"Monday 07:00  1 section",
				"  MAT001 - Calculus I (01)",
				"    Ada Lovelace",
				"    Monday and Wednesday from 07:00 to 08:45",
				"    Room 101",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printSections(&buf, coord, tt.sections, 80)
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestPrintCode(t *testing.T) {
	DisableColor()
	t.Cleanup(EnableColor)

	var buf bytes.Buffer
	printCode(&buf, "24M12 (05/08/2024 - 14/12/2024)")
	out := buf.String()

	for _, want := range []string{
		"24M12  Monday and Wednesday from 07:00 to 08:45",
		"4 blocks: Monday_07:00 Monday_07:55 Wednesday_07:00 Wednesday_07:55",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	printCode(&buf, "xyz")
	if !strings.Contains(buf.String(), "invalid format") || !strings.Contains(buf.String(), "no blocks") {
		t.Errorf("invalid code output = %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "Room 101", width: 20, want: "Room 101"},
		{in: "Introduction to Programming", width: 10, want: "Introdu..."},
		{in: "anything", width: 0, want: "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestFormatSwatch(t *testing.T) {
	DisableColor()
	t.Cleanup(EnableColor)

	if got := formatSwatch("#f8b195", "x"); got != "x" {
		t.Errorf("swatch without color = %q", got)
	}
	if got := formatSwatch("red", "x"); got != "x" {
		t.Errorf("malformed color = %q", got)
	}
}
