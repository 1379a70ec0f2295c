package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// compactKeys is the number of key hints above which hints lose their padding.
const compactKeys = 2

// ModalStyles are the styles of the modal frame and its key hints.
type ModalStyles struct {
	Frame       lipgloss.Style
	Header      lipgloss.Style
	Title       lipgloss.Style
	Footer      lipgloss.Style
	Body        lipgloss.Style
	Hint        lipgloss.Style
	HintPrimary lipgloss.Style
}

// Key is a key hint drawn as "[Key] Action".
type Key struct {
	Key    string
	Action string
}

func (k Key) String() string {
	return "[" + k.Key + "] " + k.Action
}

// Modal is a dialog with a title, a rendered body and the keys it accepts.
type Modal struct {
	Title string
	Body  string
	Keys  []Key
}

// Render draws the modal. The first key is the primary action.
func (m Modal) Render(styles ModalStyles) string {
	parts := []string{styles.Header.Render(styles.Title.Render(m.Title))}
	if m.Body != "" {
		parts = append(parts, m.Body)
	}
	if len(m.Keys) > 0 {
		parts = append(parts, styles.Footer.Render(renderKeys(m.Keys, styles)))
	}
	return styles.Frame.Render(strings.Join(parts, "\n\n"))
}

func renderKeys(keys []Key, styles ModalStyles) string {
	hint, primary := styles.Hint, styles.HintPrimary
	if len(keys) > compactKeys {
		hint, primary = hint.Padding(0, 1), primary.Padding(0, 1)
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		style := hint
		if i == 0 {
			style = primary
		}
		out[i] = style.Render(k.String())
	}
	return strings.Join(out, styles.Body.Render(" "))
}
