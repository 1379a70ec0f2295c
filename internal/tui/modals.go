package tui

import (
	"strings"

	"github.com/javiermolinar/horario/internal/tui/view"
)

const (
	modalFallbackWidth = 60
	// Frame, title, footer and spacing around a modal body.
	modalChromeLines = 9
	minModalBody     = 5
)

var helpEntries = []view.HelpEntry{
	{Keys: "h j k l / arrows", Description: "Move between slots"},
	{Keys: "g / G", Description: "First / last slot of the day"},
	{Keys: "Enter / Space", Description: "Show sections offered at the slot"},
	{Keys: "s", Description: "Timetable summary"},
	{Keys: "y", Description: "Copy summary to clipboard"},
	{Keys: "c", Description: "Clear the timetable"},
	{Keys: "/", Description: "Command prompt"},
	{Keys: "?", Description: "This help"},
	{Keys: "q / Ctrl+C", Description: "Quit"},
}

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalCandidates:
		return m.renderCandidatesModal()
	case ModalSummary:
		return m.renderSummaryModal()
	case ModalConfirmReset:
		return m.renderConfirmResetModal()
	case ModalHelp:
		return m.renderHelpModal()
	default:
		return ""
	}
}

func (m Model) modalContentWidth() int {
	return view.ModalContentWidth(m.styles.ModalStyle, modalFallbackWidth)
}

// modalBodyHeight is the number of body lines a modal may show.
func (m Model) modalBodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	return max(minModalBody, m.height-modalChromeLines)
}

func (m Model) candidatesViewModel() view.CandidatesModel {
	c := m.candidates
	vm := view.NewCandidatesModel(c.coord, c.sections, c.selected, m.controller.Session().CanPlace)
	vm.Loading = c.loading
	vm.Failed = c.failed
	if c.message != "" {
		vm.Message = c.message
	}
	return vm
}

// renderCandidatesModal renders the sections offered at the opened slot,
// scrolled so the selected section stays in view.
func (m Model) renderCandidatesModal() string {
	vm := m.candidatesViewModel()
	lines := view.CandidateLines(vm)
	lines, _ = view.ScrollLines(lines, selectedLineOffset(lines, m.modalBodyHeight()), m.modalBodyHeight())

	body := view.RenderLines(lines, m.styles.ModalStyleSet().BodyStyles(), m.modalContentWidth())
	return view.Modal{Title: "Sections", Body: body, Keys: view.CandidatesKeys(vm)}.Render(m.styles.modalStyles())
}

// selectedLineOffset returns a scroll offset that keeps the selected
// item's title near the top third of the body.
func selectedLineOffset(lines []view.Line, height int) int {
	if height <= 0 {
		return 0
	}
	for i, line := range lines {
		if line.Style == view.LineSelected && strings.HasPrefix(line.Text, "> ") {
			return max(0, i-height/3)
		}
	}
	return 0
}

// renderSummaryModal renders the scrollable timetable summary.
func (m Model) renderSummaryModal() string {
	lines, _ := view.ScrollLines(m.summary.lines, m.summary.scroll, m.modalBodyHeight())
	if m.summary.insightPending {
		lines = append(lines, view.Line{Text: ""}, view.Line{Text: "Asking for an insight...", Style: view.LineMeta})
	}
	body := view.RenderLines(lines, m.styles.ModalStyleSet().BodyStyles(), m.modalContentWidth())
	hasInsight := m.summary.summary != nil && m.summary.summary.Insight != ""
	return view.Modal{Title: "Timetable", Body: body, Keys: view.SummaryKeys(hasInsight)}.Render(m.styles.modalStyles())
}

// renderConfirmResetModal asks before clearing the timetable.
func (m Model) renderConfirmResetModal() string {
	model := view.ConfirmResetModel{Sections: len(m.controller.Session().Selected())}
	body := view.RenderConfirmResetBody(model, m.styles.ModalStyleSet().ConfirmResetStyles())
	return view.Modal{Title: "Clear Timetable", Body: body, Keys: view.ConfirmResetKeys}.Render(m.styles.modalStyles())
}

func (m Model) renderHelpModal() string {
	entries := make([]view.HelpEntry, 0, len(helpEntries)+len(promptCommands))
	entries = append(entries, helpEntries...)
	for _, cmd := range promptCommands {
		entries = append(entries, view.HelpEntry{Keys: cmd.Name, Description: cmd.Description})
	}
	body := view.RenderHelpBody(entries, m.styles.ModalStyleSet().HelpStyles())
	return view.Modal{Title: "Help", Body: body, Keys: view.HelpKeys}.Render(m.styles.modalStyles())
}
