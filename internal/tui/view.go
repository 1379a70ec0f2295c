package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/horario/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading timetable..."
	}
	base := m.renderAppContent()
	if m.mode != ModeModal || m.modalType == ModalNone {
		return base
	}
	m.overlay.active = true
	m.overlay.SetBackground(m.styles.ModalBgColor)
	return m.overlay.Render(base, m.width, m.height, m.renderModal())
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	content := lipgloss.JoinVertical(lipgloss.Left, m.renderGrid(layout), m.renderFooter(layout))
	app := m.styles.AppStyle.Render(content)
	return view.Fill(app, m.width, m.height, m.styles.colorBg)
}

// renderGrid draws the visible rows from the display projection.
func (m Model) renderGrid(layout LayoutCache) string {
	start := m.scrollOffset
	end := min(len(m.rows), start+m.visibleRows())
	if start > end {
		start = end
	}
	return view.RenderGrid(view.Grid{
		Width:    layout.InnerW,
		Height:   layout.GridH,
		ColWidth: m.colWidth,
		Days:     m.days,
		Rows:     m.rows[start:end],
		Cells:    m.projection.Snapshot(),
		Cursor:   m.cursorCoord(),
		Styles:   m.styles.gridStyles(),
		Bg:       m.styles.colorBg,
	})
}

func (m Model) renderFooter(layout LayoutCache) string {
	width := layout.PromptContentWidth
	return view.RenderFooter(view.Footer{
		Width:       layout.InnerW,
		Height:      layout.FooterH,
		Compact:     layout.FooterH < footerMinHeight,
		Selection:   m.renderSelection(),
		Legend:      m.renderLegend(),
		Status:      m.statusMsgOrDefault(),
		Help:        m.renderHelp(),
		Prompt:      view.ClampLines(m.promptLines(width), m.promptMaxContentLines(), width),
		PromptFocus: m.mode == ModePrompt,
		HidePrompt:  m.mode == ModeModal,
		PromptLines: m.promptMaxContentLines(),
		Styles: view.FooterStyles{
			Line:        layout.FooterAuxStyle,
			Status:      layout.StatusAuxStyle,
			Help:        layout.HelpAuxStyle,
			Prompt:      layout.PromptStyle,
			PromptFocus: layout.PromptFocusedStyle,
		},
		Bg: m.styles.colorBg,
	})
}

// renderSelection renders one colored chip per placed section.
func (m Model) renderSelection() string {
	selected := m.controller.Session().Selected()
	if len(selected) == 0 {
		return m.styles.LegendStyle.Render("No sections selected")
	}

	colors := m.projection.Colors()
	sep := m.styles.SelectionStyle.Render(" ")
	chips := make([]string, 0, len(selected))
	for _, sec := range selected {
		color, ok := colors[sec.ID]
		if !ok {
			chips = append(chips, m.styles.SelectionStyle.Render(sec.ShortName()))
			continue
		}
		chips = append(chips, m.styles.SectionCellStyleWidth(color, 0).Padding(0, 1).Render(sec.ShortName()))
	}
	return strings.Join(chips, sep)
}

// renderLegend renders occupancy counts for the week.
func (m Model) renderLegend() string {
	total := m.controller.Session().Layout().Size()
	taken := m.projection.Len()
	c := m.cursorCoord()
	return m.styles.LegendStyle.Render(fmt.Sprintf("%s %s | Classes: %d | Free slots: %d", c.Day, c.Slot, taken, total-taken))
}

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

// renderHelp renders the help bar.
func (m Model) renderHelp() string {
	var help string
	switch m.mode {
	case ModePrompt:
		help = "Enter: submit | Tab: complete | Esc: cancel"
	case ModeModal:
		switch m.modalType {
		case ModalCandidates:
			help = "j/k: select | Enter: choose | r: retry | Esc: close"
		case ModalSummary:
			help = "j/k: scroll | i: insight | y: copy | Esc: close"
		case ModalConfirmReset:
			help = "y/Enter: clear | n/Esc: cancel"
		default:
			help = "Esc: close"
		}
	default:
		help = "h/j/k/l: move | Enter: sections | s: summary | c: clear | /: commands | ?: help | q: quit"
	}
	return m.styles.HelpStyle.Render(help)
}
