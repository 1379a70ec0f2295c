package view

import (
	"fmt"

	"github.com/javiermolinar/horario/internal/timetable"
)

// CandidateItem is one section offered at the opened slot.
type CandidateItem struct {
	Title      string
	Instructor string
	Schedule   string
	Location   string
	Conflict   string // Empty when the section fits the current timetable
}

// CandidatesModel contains the fields needed to render the candidates body.
type CandidatesModel struct {
	Heading  string
	Items    []CandidateItem
	Selected int
	Loading  bool
	Message  string // Shown instead of items: empty list or lookup failure
	Failed   bool
}

// NewCandidatesModel builds the candidates body for coord. conflict reports
// why a section cannot be placed, or nil when it fits.
func NewCandidatesModel(coord timetable.Coordinate, sections []timetable.Section, selected int, conflict func(*timetable.Section) error) CandidatesModel {
	m := CandidatesModel{
		Heading:  fmt.Sprintf("%s %s", coord.Day, coord.Slot),
		Selected: selected,
		Items:    make([]CandidateItem, 0, len(sections)),
	}
	for i := range sections {
		sec := &sections[i]
		item := CandidateItem{
			Title:      sec.Title(),
			Instructor: sec.Instructor,
			Schedule:   sec.Schedule,
			Location:   sec.Location,
		}
		if conflict != nil {
			if err := conflict(sec); err != nil {
				item.Conflict = err.Error()
			}
		}
		m.Items = append(m.Items, item)
	}
	if len(m.Items) == 0 {
		m.Message = timetable.EmptyMessage
	}
	return m
}

// CandidateLines builds the body lines for the candidates modal.
func CandidateLines(model CandidatesModel) []Line {
	lines := []Line{{Text: model.Heading, Style: LineMeta}, {Text: ""}}

	switch {
	case model.Loading:
		return append(lines, Line{Text: "Loading sections...", Style: LineMeta})
	case model.Failed:
		return append(lines, Line{Text: model.Message, Style: LineWarning})
	case len(model.Items) == 0:
		return append(lines, Line{Text: model.Message})
	}

	for i, item := range model.Items {
		if i > 0 {
			lines = append(lines, Line{Text: ""})
		}
		marker := "  "
		titleStyle := LineSection
		if i == model.Selected {
			marker = "> "
			titleStyle = LineSelected
		}
		lines = append(lines, Line{Text: marker + item.Title, Style: titleStyle})
		lines = append(lines, Line{Text: "  " + item.Instructor})
		lines = append(lines, Line{Text: "  " + item.Schedule, Style: LineMeta})
		lines = append(lines, Line{Text: "  " + item.Location, Style: LineMeta})
		if item.Conflict != "" {
			lines = append(lines, Line{Text: "  " + item.Conflict, Style: LineWarning})
		}
	}
	return lines
}

// RenderCandidatesBody renders the modal body for the candidate list.
func RenderCandidatesBody(model CandidatesModel, styles BodyStyles, contentWidth int) string {
	return RenderLines(CandidateLines(model), styles, contentWidth)
}
