// Package input parses the slash commands typed into the TUI prompt.
package input

import "strings"

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Description string
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !strings.HasPrefix(strings.TrimSpace(input), "/") {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name, true
}

// ResolveCommand maps submitted input to a known command name.
// A unique prefix resolves to its command; "/s" is "/summary".
func ResolveCommand(input string, commands []PromptCommand) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(input))
	if name == "" || !strings.HasPrefix(name, "/") {
		return "", false
	}
	if fields := strings.Fields(name); len(fields) > 0 {
		name = fields[0]
	}
	for _, cmd := range commands {
		if strings.ToLower(cmd.Name) == name {
			return cmd.Name, true
		}
	}
	matches := PromptMatchingCommands(name, commands)
	if len(matches) == 1 {
		return matches[0].Name, true
	}
	return "", false
}
