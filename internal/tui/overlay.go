package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/horario/internal/tui/view"
)

// OverlayModel splices a modal over the grid. Modal lines taller than the
// terminal are cut from the bottom so the title stays visible.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{bgColor: lipgloss.Color("")}
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the overlay background color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content centered on top of base.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}
	lines := o.contentLines(content)
	if len(lines) == 0 {
		return base
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	bg := view.BackgroundSeq(o.bgColor)
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			line = ansi.Cut(line, 0, width)
		}
		lines[i] = bg + line
	}
	return view.Overlay(base, lines, width, height, o.bgColor)
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
