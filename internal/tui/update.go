package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/timetable"
	"github.com/javiermolinar/horario/internal/tui/commands"
	"github.com/javiermolinar/horario/internal/tui/view"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case commands.CandidatesMsg:
		return m.handleCandidates(msg)

	case commands.InsightMsg:
		if m.modalType != ModalSummary || m.summary.summary == nil {
			return m, m.setStatus("Insight ready; reopen the summary")
		}
		s := *m.summary.summary
		s.Insight = msg.Insight
		m.summary.summary = &s
		m.summary.lines = view.SummaryLines(&s)
		m.summary.insightPending = false
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.summary.insightPending = false
		m.setError(msg.Err)
		return m, nil

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Handle prompt input when in prompt mode
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		m.relayout()
		return m, cmd
	}
	return m, nil
}

// handleCandidates settles a finished lookup. Results for a slot that is
// no longer open are dropped without touching the session or display.
func (m Model) handleCandidates(msg commands.CandidatesMsg) (tea.Model, tea.Cmd) {
	open := m.mode == ModeModal && m.modalType == ModalCandidates &&
		m.candidates.loading && m.candidates.coord == msg.Coord
	if !open {
		LogLookup(msg.Coord, len(msg.Sections), msg.Err)
		return m, nil
	}

	sections, err := m.controller.Resolve(msg.Sections, msg.Err)
	LogLookup(msg.Coord, len(sections), err)
	m.candidates.loading = false
	if err != nil {
		m.candidates.failed = true
		m.candidates.message = m.projection.TakeFailure()
		if m.candidates.message == "" {
			m.candidates.message = timetable.RetryMessage
		}
		return m, nil
	}

	m.candidates.sections = sections
	m.candidates.selected = 0
	return m, nil
}
