package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// BackgroundSeq returns the escape sequence that sets bg, or "" when bg is unset.
func BackgroundSeq(bg lipgloss.Color) string {
	if bg == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(bg))).String()
}

// Overlay centers box over base, which is first filled to width×height.
// Box lines are padded to the widest one and keep bg after the style
// resets of their inner spans.
func Overlay(base string, box []string, width, height int, bg lipgloss.Color) string {
	if len(box) == 0 || width <= 0 || height <= 0 {
		return base
	}
	boxW := 0
	for _, line := range box {
		boxW = max(boxW, lipgloss.Width(line))
	}
	boxW = min(boxW, width)
	if boxW == 0 {
		return base
	}

	top := max(0, (height-len(box))/2)
	left := max(0, (width-boxW)/2)
	keep := keepBackground(bg)
	pad := lipgloss.NewStyle().Background(bg)

	rows := strings.Split(Fill(base, width, height, ""), "\n")
	for i, line := range box {
		row := top + i
		if row >= len(rows) {
			break
		}
		switch w := lipgloss.Width(line); {
		case w > boxW:
			line = ansi.Cut(line, 0, boxW)
		case w < boxW:
			line += pad.Render(strings.Repeat(" ", boxW-w))
		}
		line = keep.Replace(line) + ansi.ResetStyle
		rows[row] = ansi.Cut(rows[row], 0, left) + line + ansi.Cut(rows[row], left+boxW, width)
	}
	return strings.Join(rows, "\n")
}

// keepBackground re-applies bg after every sequence that clears it.
func keepBackground(bg lipgloss.Color) *strings.Replacer {
	seq := BackgroundSeq(bg)
	if seq == "" {
		return strings.NewReplacer()
	}
	return strings.NewReplacer(
		ansi.ResetStyle, ansi.ResetStyle+seq,
		"\x1b[0m", "\x1b[0m"+seq,
		"\x1b[49m", "\x1b[49m"+seq,
	)
}
