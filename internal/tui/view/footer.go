package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterStyles are the width-bound styles of the footer lines.
type FooterStyles struct {
	Line        lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Prompt      lipgloss.Style
	PromptFocus lipgloss.Style
}

// Footer is the block under the grid: the placed sections, the occupancy
// legend, the command prompt, the status line and key help.
type Footer struct {
	Width  int
	Height int
	// Compact keeps only the status and help lines.
	Compact bool

	Selection string
	Legend    string
	Status    string
	Help      string

	Prompt      []string
	PromptFocus bool
	// HidePrompt blanks the prompt while a modal is open, keeping
	// PromptLines rows so the grid does not jump.
	HidePrompt  bool
	PromptLines int

	Styles FooterStyles
	Bg     lipgloss.Color
}

// RenderFooter draws the footer bottom-aligned in its box.
func RenderFooter(f Footer) string {
	if f.Height <= 0 {
		return ""
	}
	lines := make([]string, 0, 5)
	if !f.Compact {
		lines = append(lines,
			footerLine(f.Width, f.Styles.Line, f.Selection),
			footerLine(f.Width, f.Styles.Line, f.Legend),
			f.prompt(),
		)
	}
	lines = append(lines,
		footerLine(f.Width, f.Styles.Status, f.Status),
		footerLine(f.Width, f.Styles.Help, f.Help),
	)
	return Place(f.Width, f.Height, lipgloss.Bottom, strings.Join(lines, "\n"), f.Bg)
}

func (f Footer) prompt() string {
	if f.HidePrompt {
		return PromptBox(f.Width, f.Styles.Prompt, make([]string, max(1, f.PromptLines)))
	}
	style := f.Styles.Prompt
	if f.PromptFocus {
		style = f.Styles.PromptFocus
	}
	return PromptBox(f.Width, style, f.Prompt)
}

// footerLine renders content on one line, truncated to the style's content width.
func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	inner := max(0, width-frameW)
	if inner > 0 {
		content = ansi.Truncate(content, inner, "")
	}
	return style.Width(inner).Render(content)
}
