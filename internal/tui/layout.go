package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants for boxed rendering.
const (
	footerCompact = 2

	footerBaseLines       = 4 // Selection(1) + Legend(1) + Status(1) + Help(1)
	promptBorderLines     = 2
	promptMinContentLines = 1

	footerMinHeight     = footerBaseLines + promptBorderLines + promptMinContentLines
	footerFullMinHeight = 15

	// Table chrome: top border, header, header separator, bottom border.
	tableChromeLines = 4
	minColWidth      = 8
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	FooterH int
	GridH   int

	FooterAuxStyle lipgloss.Style
	StatusAuxStyle lipgloss.Style
	HelpAuxStyle   lipgloss.Style

	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

func promptContentWidth(styles *Styles, innerW int) int {
	promptFrameW, _ := styles.PromptStyle.GetFrameSize()
	promptWidth := innerW - promptFrameW
	if promptWidth < 0 {
		promptWidth = 0
	}
	return promptWidth
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	footerH := footerCompact
	if innerH >= footerFullMinHeight {
		footerH = m.fullFooterHeight(innerH, promptContentWidth(styles, innerW))
	}

	gridH := innerH - footerH
	if gridH < tableChromeLines+1 {
		gridH = tableChromeLines + 1
	}

	footerAuxStyle := lipgloss.NewStyle().
		Width(innerW).
		Background(styles.colorBg)
	statusAuxStyle := styles.StatusStyle.Inherit(footerAuxStyle)
	helpAuxStyle := styles.HelpStyle.Inherit(lipgloss.NewStyle().
		Padding(0, 1).
		Width(max(0, innerW-2)).
		Background(styles.colorBg))

	promptWidth := promptContentWidth(styles, innerW)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		FooterH:            footerH,
		GridH:              gridH,
		FooterAuxStyle:     footerAuxStyle,
		StatusAuxStyle:     statusAuxStyle,
		HelpAuxStyle:       helpAuxStyle,
		PromptStyle:        styles.PromptStyle.Width(promptWidth),
		PromptFocusedStyle: styles.PromptFocusedStyle.Width(promptWidth),
		PromptContentWidth: promptWidth,
	}
}

// fullFooterHeight sizes the footer so the prompt can grow with its suggestions.
func (m Model) fullFooterHeight(innerH, promptWidth int) int {
	promptLines := max(promptMinContentLines, len(m.promptLines(promptWidth)))
	desired := footerBaseLines + promptLines + promptBorderLines

	maxFooter := innerH - tableChromeLines - 1
	if maxFooter < footerMinHeight {
		return footerCompact
	}
	return min(max(desired, footerMinHeight), maxFooter)
}

func (m Model) promptMaxContentLines() int {
	maxLines := m.layoutCache.FooterH - footerBaseLines - promptBorderLines
	if maxLines < promptMinContentLines {
		return promptMinContentLines
	}
	return maxLines
}

// calculateColWidth splits the width left after the time column among the days.
func (m Model) calculateColWidth() int {
	if m.layoutCache.InnerW == 0 || len(m.days) == 0 {
		return defaultColWidth
	}
	// Outer borders plus one separator per day column.
	chrome := 2 + timeColWidth + len(m.days)
	colWidth := (m.layoutCache.InnerW - chrome) / len(m.days)
	if colWidth < minColWidth {
		return minColWidth
	}
	return colWidth
}

// visibleRows returns how many grid rows fit in the table.
func (m Model) visibleRows() int {
	visible := m.layoutCache.GridH - tableChromeLines
	if visible < 1 {
		visible = 1
	}
	return min(visible, len(m.rows))
}

// cursorRow maps the cursor slot to its row index, intervals included.
func (m Model) cursorRow() int {
	slot := m.slots[m.cursor.Slot]
	for i, r := range m.rows {
		if r.Label == slot {
			return i
		}
	}
	return 0
}

// ensureCursorVisible adjusts scroll offset to keep cursor visible.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	row := m.cursorRow()

	if row < m.scrollOffset {
		m.scrollOffset = row
	}
	if row >= m.scrollOffset+visible {
		m.scrollOffset = row - visible + 1
	}

	maxScroll := max(0, len(m.rows)-visible)
	m.scrollOffset = min(max(m.scrollOffset, 0), maxScroll)
}

// resize recomputes every size-derived field.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.layoutCache = m.buildLayoutCache(width, height)
	m.colWidth = m.calculateColWidth()
	m.ensureCursorVisible()
}
