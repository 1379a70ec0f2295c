package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/horario/internal/tui/input"
)

const (
	promptMark   = "> "
	promptIndent = "  "
	promptCursor = "_"
)

// PromptLines wraps the typed command to width. While focused it shows a
// cursor and lists the matching commands under the input.
func PromptLines(value string, focused bool, matches []input.PromptCommand, width int) []string {
	if focused {
		value += promptCursor
	}
	lines := wrapIndented(value, promptMark, width)
	if !focused {
		return lines
	}
	for _, cmd := range matches {
		lines = append(lines, wrapIndented(cmd.Name+" "+cmd.Description, promptIndent, width)...)
	}
	return lines
}

// ClampLines keeps the first n lines and marks the cut with "...".
func ClampLines(lines []string, n, width int) []string {
	if n <= 0 {
		return nil
	}
	if len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	out[n-1] = runewidth.Truncate(out[n-1]+"...", max(0, width), "...")
	return out
}

// PromptBox renders lines inside the prompt frame, sized to width.
func PromptBox(width int, style lipgloss.Style, lines []string) string {
	frameW, _ := style.GetFrameSize()
	if len(lines) == 0 {
		lines = []string{""}
	}
	return style.Width(max(0, width-frameW)).Render(strings.Join(lines, "\n"))
}

// Wrap breaks s at spaces into lines of at most width cells; the first
// line is at most first cells. Words wider than a line are split.
func Wrap(s string, first, width int) []string {
	if first <= 0 || width <= 0 {
		return []string{""}
	}
	var (
		lines []string
		line  strings.Builder
		used  int
		limit = first
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		used = 0
		limit = width
	}

	for _, word := range strings.Split(s, " ") {
		w := runewidth.StringWidth(word)
		if used > 0 && used+1+w > limit {
			flush()
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		for w > limit-used {
			head := runewidth.Truncate(word, limit-used, "")
			if head == "" {
				if used > 0 {
					flush()
					continue
				}
				head = string([]rune(word)[:1])
			}
			line.WriteString(head)
			word = word[len(head):]
			w = runewidth.StringWidth(word)
			flush()
		}
		line.WriteString(word)
		used += w
	}
	return append(lines, line.String())
}

// wrapIndented wraps s after mark, indenting continuation lines to match.
func wrapIndented(s, mark string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	indent := strings.Repeat(" ", len(mark))
	lines := Wrap(s, max(0, width-len(mark)), max(0, width-len(indent)))
	for i := range lines {
		if i == 0 {
			lines[i] = mark + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return lines
}
