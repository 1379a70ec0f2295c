package ui

import (
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Course names: bold cyan
	colorCourse = color.New(color.FgCyan, color.Bold)

	// Schedule text: yellow so times stand out
	colorSchedule = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Counts: green
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatCourse(s string) string {
	return colorCourse.Sprint(s)
}

func formatSchedule(s string) string {
	return colorSchedule.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatStats(s string) string {
	return colorStats.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatSwatch renders text on a #rrggbb background. Malformed colors
// fall back to plain text.
func formatSwatch(hex, s string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return s
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return s
	}
	r, g, b := int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)
	return color.BgRGB(r, g, b).Sprint(s)
}
