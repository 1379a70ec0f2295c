// Package summary provides timetable summary utilities.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/javiermolinar/horario/internal/llm"
	"github.com/javiermolinar/horario/internal/timetable"
)

// Class is one occupied slot on a day.
type Class struct {
	Slot    string
	Section *timetable.Section
}

// DayLoad holds the classes of one day, in slot order.
type DayLoad struct {
	Day     string
	Classes []Class
}

// Summary holds aggregated timetable data and optional insight.
type Summary struct {
	Sections []*timetable.Section // Placement order
	Days     []DayLoad            // Layout day order
	FreeDays []string
	Classes  int // Occupied slots per week
	Insight  string
}

// Build summarizes the session's current timetable.
func Build(session *timetable.Session) *Summary {
	grid := session.Grid()
	layout := grid.Layout()

	s := &Summary{Sections: session.Selected()}
	for _, day := range layout.Days() {
		load := DayLoad{Day: day}
		for _, slot := range layout.Slots() {
			cell, _ := grid.At(timetable.Coordinate{Day: day, Slot: slot})
			if cell.Occupied {
				load.Classes = append(load.Classes, Class{Slot: slot, Section: cell.Section})
			}
		}
		if len(load.Classes) == 0 {
			s.FreeDays = append(s.FreeDays, day)
		}
		s.Classes += len(load.Classes)
		s.Days = append(s.Days, load)
	}
	return s
}

// Empty reports whether no section has been placed.
func (s *Summary) Empty() bool {
	return len(s.Sections) == 0
}

// BusiestDay returns the day with the most classes; ties go to the earlier day.
func (s *Summary) BusiestDay() (DayLoad, bool) {
	var best DayLoad
	found := false
	for _, d := range s.Days {
		if len(d.Classes) > len(best.Classes) {
			best = d
			found = true
		}
	}
	return best, found
}

// Text renders the summary as plain text suitable for the clipboard.
func (s *Summary) Text() string {
	if s.Empty() {
		return "No sections selected."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Timetable: %d %s, %d weekly classes\n",
		len(s.Sections), plural(len(s.Sections), "section", "sections"), s.Classes)

	for _, d := range s.Days {
		if len(d.Classes) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n%s\n", d.Day)
		for _, c := range d.Classes {
			name := "?"
			if c.Section != nil {
				name = c.Section.ShortName()
				if c.Section.Label != "" {
					name += " (" + c.Section.Label + ")"
				}
			}
			fmt.Fprintf(&sb, "  %s  %s\n", c.Slot, name)
		}
	}

	if len(s.FreeDays) > 0 {
		fmt.Fprintf(&sb, "\nFree days: %s\n", strings.Join(s.FreeDays, ", "))
	}

	sb.WriteString("\nSections:\n")
	for _, sec := range s.Sections {
		fmt.Fprintf(&sb, "  %s\n", sec.Title())
		if sec.Instructor != "" {
			fmt.Fprintf(&sb, "    %s\n", sec.Instructor)
		}
		if sec.Schedule != "" {
			fmt.Fprintf(&sb, "    %s\n", sec.Schedule)
		}
		if sec.Location != "" {
			fmt.Fprintf(&sb, "    %s\n", sec.Location)
		}
	}

	if s.Insight != "" {
		fmt.Fprintf(&sb, "\n%s\n", s.Insight)
	}

	return strings.TrimRight(sb.String(), "\n")
}

// WithInsight asks client for a review of s and stores it in s.Insight.
// An empty timetable is left untouched.
func WithInsight(ctx context.Context, client llm.Client, s *Summary) error {
	if s.Empty() {
		return nil
	}
	if client == nil {
		return errors.New("LLM client is required for insight")
	}

	review, err := llm.NewReviewer(client).Review(ctx, s.Text())
	if err != nil {
		return fmt.Errorf("evaluating timetable: %w", err)
	}
	s.Insight = review.String()
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
