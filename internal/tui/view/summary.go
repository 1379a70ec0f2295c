package view

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/horario/internal/summary"
)

// SummaryLines builds the lines for the timetable summary modal.
func SummaryLines(s *summary.Summary) []Line {
	if s == nil || s.Empty() {
		return []Line{{Text: "No sections selected yet. Pick a slot and press Enter."}}
	}

	lines := make([]Line, 0, 32)
	lines = append(lines, Line{
		Text:  fmt.Sprintf("%d sections | %d classes a week", len(s.Sections), s.Classes),
		Style: LineMeta,
	})
	if busiest, ok := s.BusiestDay(); ok {
		lines = append(lines, Line{Text: fmt.Sprintf("Busiest day: %s (%d classes)", busiest.Day, len(busiest.Classes))})
	}
	if len(s.FreeDays) > 0 {
		lines = append(lines, Line{Text: "Free days: " + strings.Join(s.FreeDays, ", ")})
	}

	for _, d := range s.Days {
		if len(d.Classes) == 0 {
			continue
		}
		lines = append(lines, Line{Text: ""})
		lines = append(lines, Line{Text: d.Day, Style: LineSection})
		for _, c := range d.Classes {
			name := "?"
			if c.Section != nil {
				name = c.Section.ShortName()
			}
			lines = append(lines, Line{Text: fmt.Sprintf("  %s  %s", c.Slot, name)})
		}
	}

	lines = append(lines, Line{Text: ""})
	lines = append(lines, Line{Text: "SECTIONS", Style: LineSection})
	for _, sec := range s.Sections {
		lines = append(lines, Line{Text: "  " + sec.Title()})
		lines = append(lines, Line{Text: "    " + sec.Schedule, Style: LineMeta})
	}

	if s.Insight != "" {
		lines = append(lines, Line{Text: ""})
		lines = append(lines, Line{Text: "INSIGHT", Style: LineSection})
		for _, line := range strings.Split(s.Insight, "\n") {
			lines = append(lines, Line{Text: line})
		}
	}

	return lines
}

// ScrollLines returns at most height lines starting at offset, clamping offset.
func ScrollLines(lines []Line, offset, height int) ([]Line, int) {
	if height <= 0 || len(lines) <= height {
		return lines, 0
	}
	maxOffset := len(lines) - height
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return lines[offset : offset+height], offset
}
