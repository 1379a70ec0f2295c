package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/summary"
	"github.com/javiermolinar/horario/internal/timetable"
	"github.com/javiermolinar/horario/internal/tui/commands"
	"github.com/javiermolinar/horario/internal/tui/input"
	"github.com/javiermolinar/horario/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.mode)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
		}
	case "l", "right":
		if m.cursor.Day < len(m.days)-1 {
			m.cursor.Day++
		}
	case "k", "up":
		if m.cursor.Slot > 0 {
			m.cursor.Slot--
		}
	case "j", "down":
		if m.cursor.Slot < len(m.slots)-1 {
			m.cursor.Slot++
		}
	case "g":
		m.cursor.Slot = 0
	case "G":
		m.cursor.Slot = len(m.slots) - 1

	// Actions
	case "enter", " ":
		return m.openSlot()
	case "s":
		return m.openSummary()
	case "y":
		return m.copySummary()
	case "c":
		return m.openConfirmReset()
	case "?":
		m.openModal(ModalHelp)
		return m, nil
	case "/":
		m.mode = ModePrompt
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
		cmd := m.prompt.Focus()
		m.relayout()
		return m, cmd
	}

	m.ensureCursorVisible()
	return m, nil
}

// openSlot checks the slot under the cursor and starts the candidate lookup.
// An occupied slot never reaches the lookup.
func (m Model) openSlot() (tea.Model, tea.Cmd) {
	coord := m.cursorCoord()
	if err := m.controller.Check(coord); err != nil {
		LogRejection("open", err)
		if errors.Is(err, timetable.ErrAlreadyOccupied) {
			if cell, ok := m.projection.Cell(coord); ok {
				return m, m.setStatus(fmt.Sprintf("%s %s is taken by %s", coord.Day, coord.Slot, cell.ShortName))
			}
		}
		return m, m.setStatus(err.Error())
	}

	m.openModal(ModalCandidates)
	m.candidates = candidateState{coord: coord, loading: true}
	return m, commands.FetchCandidates(m.controller, coord, m.config.LookupTimeout())
}

func (m Model) openSummary() (tea.Model, tea.Cmd) {
	s := summary.Build(m.controller.Session())
	m.openModal(ModalSummary)
	m.summary = summaryState{summary: s, lines: view.SummaryLines(s)}
	return m, nil
}

func (m Model) copySummary() (tea.Model, tea.Cmd) {
	s := summary.Build(m.controller.Session())
	if s.Empty() {
		return m, m.setStatus("Nothing to copy")
	}
	return m, commands.CopyText(s.Text(), "Copied timetable summary")
}

func (m Model) openConfirmReset() (tea.Model, tea.Cmd) {
	if len(m.controller.Session().Selected()) == 0 {
		return m, m.setStatus("Nothing to clear")
	}
	m.openModal(ModalConfirmReset)
	return m, nil
}

func (m *Model) openModal(t ModalType) {
	m.mode = ModeModal
	m.modalType = t
}

// relayout rebuilds size-derived state after the footer changes shape.
func (m *Model) relayout() {
	m.resize(m.width, m.height)
}

// handlePromptKeys handles keys in prompt mode.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leavePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.leavePrompt()
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			m.relayout()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.relayout()
	return m, cmd
}

func (m *Model) leavePrompt() {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.relayout()
}

func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	if value == "" || value == "/" {
		return m, nil
	}
	name, ok := input.ResolveCommand(value, promptCommands)
	if !ok {
		return m, m.setStatus(fmt.Sprintf("Unknown command: %s", value))
	}

	switch name {
	case "/summary":
		return m.openSummary()
	case "/clear":
		return m.openConfirmReset()
	case "/copy":
		return m.copySummary()
	case "/help":
		m.openModal(ModalHelp)
		return m, nil
	case "/quit":
		return m, tea.Quit
	}
	return m, nil
}

// handleModalKeys routes keys to the open modal.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalCandidates:
		return m.handleCandidateKeys(msg)
	case ModalSummary:
		return m.handleSummaryKeys(msg)
	case ModalConfirmReset:
		return m.handleConfirmResetKeys(msg)
	case ModalHelp:
		switch msg.String() {
		case "esc", "q", "enter", "?":
			m.closeModal()
		}
		return m, nil
	}
	m.closeModal()
	return m, nil
}

func (m Model) handleCandidateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.candidates
	switch msg.String() {
	case "esc", "q":
		m.closeModal()
		return m, nil
	case "j", "down":
		if c.selected < len(c.sections)-1 {
			c.selected++
		}
	case "k", "up":
		if c.selected > 0 {
			c.selected--
		}
	case "r":
		if c.failed {
			return m.retryLookup()
		}
	case "enter", " ":
		switch {
		case c.loading:
			return m, nil
		case c.failed:
			return m.retryLookup()
		case len(c.sections) == 0:
			m.closeModal()
			return m, nil
		}
		return m.chooseCandidate()
	}
	return m, nil
}

func (m Model) retryLookup() (tea.Model, tea.Cmd) {
	coord := m.candidates.coord
	m.candidates = candidateState{coord: coord, loading: true}
	return m, commands.FetchCandidates(m.controller, coord, m.config.LookupTimeout())
}

// chooseCandidate places the highlighted section. A conflict leaves the
// list open so another section can be picked.
func (m Model) chooseCandidate() (tea.Model, tea.Cmd) {
	sec := m.candidates.sections[m.candidates.selected]
	res, err := m.controller.Choose(&sec)
	if err != nil {
		LogRejection("choose", err)
		var conflict *timetable.ConflictError
		if errors.As(err, &conflict) {
			return m, m.setStatus(conflict.Error())
		}
		return m, m.setStatus(err.Error())
	}

	LogPlacement(res)
	m.closeModal()
	return m, m.setStatus(fmt.Sprintf("Placed %s (%d classes)", res.Section.ShortName(), len(res.Cells)))
}

func (m Model) handleSummaryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	height := m.modalBodyHeight()
	switch msg.String() {
	case "esc", "q", "enter":
		m.closeModal()
		return m, nil
	case "j", "down":
		_, m.summary.scroll = view.ScrollLines(m.summary.lines, m.summary.scroll+1, height)
	case "k", "up":
		_, m.summary.scroll = view.ScrollLines(m.summary.lines, m.summary.scroll-1, height)
	case "y":
		return m.copySummary()
	case "i":
		s := m.summary.summary
		if s == nil || s.Empty() {
			return m, m.setStatus("Nothing to review yet")
		}
		if s.Insight != "" || m.summary.insightPending {
			return m, nil
		}
		m.summary.insightPending = true
		return m, commands.Insight(m.config, s)
	}
	return m, nil
}

func (m Model) handleConfirmResetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		n := len(m.controller.Session().Selected())
		m.controller.Reset()
		LogReset(n)
		m.closeModal()
		return m, m.setStatus("Timetable cleared")
	case "n", "esc", "q":
		m.closeModal()
	}
	return m, nil
}
