package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/timetable"
)

// stubLookup returns the same candidates for every coordinate.
type stubLookup struct {
	sections []timetable.Section
	err      error
	calls    int
}

func (s *stubLookup) FetchCandidates(_ context.Context, _, _ string) ([]timetable.Section, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.sections, nil
}

func block(day, slot string) timetable.Coordinate {
	return timetable.Coordinate{Day: day, Slot: slot}
}

func testSection(id int64, name string, blocks ...timetable.Coordinate) timetable.Section {
	return timetable.Section{
		ID:         id,
		Name:       name,
		Label:      "T01",
		Instructor: "Ada Lovelace",
		Schedule:   "Mon 07:00",
		Location:   "Room 101",
		Blocks:     blocks,
	}
}

// newTestModel builds a sized model on the default layout.
func newTestModel(t *testing.T, lookup timetable.Lookup) Model {
	t.Helper()
	session, err := timetable.NewSession(nil, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	m := New(session, lookup, config.Default())
	m.resize(120, 40)
	return *m
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// send delivers msg and returns the updated model.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = send(t, m, keyMsg(k))
	}
	return m, cmd
}

// place commits sec through the controller, as a chosen candidate would.
func place(t *testing.T, m Model, sec timetable.Section) {
	t.Helper()
	if _, err := m.controller.Choose(&sec); err != nil {
		t.Fatalf("Choose(%s): %v", sec.Name, err)
	}
}
