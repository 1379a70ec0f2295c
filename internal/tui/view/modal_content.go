package view

import (
	"fmt"
	"strings"
)

// ConfirmResetModel contains the fields needed to render the reset confirmation body.
type ConfirmResetModel struct {
	Sections int
}

// ConfirmResetStyles groups styles for the reset confirmation body.
type ConfirmResetStyles struct {
	BodyStyle stringRenderer
	MetaStyle stringRenderer
}

// RenderConfirmResetBody renders the modal body for the reset confirmation.
func RenderConfirmResetBody(model ConfirmResetModel, styles ConfirmResetStyles) string {
	var body strings.Builder

	if model.Sections > 0 {
		noun := "sections"
		if model.Sections == 1 {
			noun = "section"
		}
		body.WriteString(styles.MetaStyle.Render(fmt.Sprintf("%d %s placed", model.Sections, noun)) + "\n\n")
	}
	body.WriteString(styles.BodyStyle.Render("This clears every slot and restarts the colors.\nAre you sure?"))

	return body.String()
}

// HelpEntry is one key binding shown in the help modal.
type HelpEntry struct {
	Keys        string
	Description string
}

// HelpStyles groups styles for the help body.
type HelpStyles struct {
	KeyStyle  stringRenderer
	BodyStyle stringRenderer
}

// RenderHelpBody renders the key bindings as aligned rows.
func RenderHelpBody(entries []HelpEntry, styles HelpStyles) string {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Keys))
	}
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		keys := e.Keys + strings.Repeat(" ", width-len(e.Keys))
		rows = append(rows, styles.KeyStyle.Render(" "+keys)+styles.BodyStyle.Render("  "+e.Description))
	}
	return strings.Join(rows, "\n")
}
