// Package view renders the timetable TUI: the week grid, the footer, and the modals.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LineStyle indicates how a modal body line should be styled.
type LineStyle int

const (
	LineBody LineStyle = iota
	LineMeta
	LineSection
	LineSelected
	LineWarning
)

// Line is a display-ready line for a modal body.
type Line struct {
	Text  string
	Style LineStyle
}

type stringRenderer interface {
	Render(...string) string
}

// BodyStyles groups styles for modal body rendering.
type BodyStyles struct {
	BodyStyle         stringRenderer
	MetaStyle         stringRenderer
	SectionTitleStyle stringRenderer
	SelectedStyle     stringRenderer
	WarningStyle      stringRenderer
}

// RenderLines renders lines into a wrapped modal body.
func RenderLines(lines []Line, styles BodyStyles, contentWidth int) string {
	if len(lines) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, wrapModalText(styles.For(line.Style), line.Text, contentWidth)...)
	}
	return strings.Join(rendered, "\n")
}

// For returns the renderer for a line style. Unset renderers fall back to the body style.
func (s BodyStyles) For(style LineStyle) stringRenderer {
	var r stringRenderer
	switch style {
	case LineMeta:
		r = s.MetaStyle
	case LineSection:
		r = s.SectionTitleStyle
	case LineSelected:
		r = s.SelectedStyle
	case LineWarning:
		r = s.WarningStyle
	}
	if r == nil {
		r = s.BodyStyle
	}
	if r == nil {
		return plainRenderer{}
	}
	return r
}

// LinesToText joins the plain text of lines, for copying.
func LinesToText(lines []Line) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, line.Text)
	}
	return strings.Join(parts, "\n")
}

// ModalContentWidth returns the content width for a modal body.
func ModalContentWidth(style lipgloss.Style, fallback int) int {
	width := style.GetWidth()
	if width <= 0 {
		return fallback
	}
	contentWidth := width - 4
	if contentWidth < 10 {
		return 10
	}
	return contentWidth
}

type plainRenderer struct{}

func (plainRenderer) Render(parts ...string) string {
	return strings.Join(parts, "")
}

func wrapModalText(style stringRenderer, text string, width int) []string {
	if width <= 0 {
		return []string{style.Render("")}
	}
	lines := Wrap(text, width, width)
	if len(lines) == 0 {
		return []string{style.Render("")}
	}

	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped = append(wrapped, style.Render(line))
	}
	return wrapped
}
