package tui

import (
	"github.com/javiermolinar/horario/internal/tui/input"
	"github.com/javiermolinar/horario/internal/tui/view"
)

var promptCommands = []input.PromptCommand{
	{
		Name:        "/summary",
		Description: "Show the week's timetable summary",
	},
	{
		Name:        "/clear",
		Description: "Clear every placed section",
	},
	{
		Name:        "/copy",
		Description: "Copy the summary to the clipboard",
	},
	{
		Name:        "/help",
		Description: "Show key bindings and commands",
	},
	{
		Name:        "/quit",
		Description: "Leave horario",
	},
}

func (m Model) promptLines(contentWidth int) []string {
	value := m.prompt.Value()
	return view.PromptLines(value, m.mode == ModePrompt, input.PromptMatchingCommands(value, promptCommands), contentWidth)
}
