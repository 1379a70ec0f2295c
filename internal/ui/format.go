package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/horario/internal/catalog"
	"github.com/javiermolinar/horario/internal/timetable"
)

// minLineWidth keeps section rows readable on very narrow terminals.
const minLineWidth = 40

// printSections prints the sections offered at coord, one block per section.
func printSections(w io.Writer, coord timetable.Coordinate, sections []timetable.Section, width int) {
	header := fmt.Sprintf("%s %s", coord.Day, coord.Slot)
	fmt.Fprintf(w, "%s  %s\n", formatHeader(header), formatStats(plural(len(sections), "section", "sections")))
	if len(sections) == 0 {
		fmt.Fprintf(w, "  %s\n", formatMuted(timetable.EmptyMessage))
		return
	}

	width = max(width, minLineWidth)
	for _, sec := range sections {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", formatCourse(truncate(sec.Title(), width-2)))
		fmt.Fprintf(w, "    %s\n", truncate(sec.Instructor, width-4))
		fmt.Fprintf(w, "    %s\n", formatSchedule(truncate(sec.Schedule, width-4)))
		fmt.Fprintf(w, "    %s\n", formatMuted(truncate(sec.Location, width-4)))
	}
}

// printCode prints the readable schedule and blocks of a schedule code.
func printCode(w io.Writer, raw string) {
	code := catalog.CodeToken(raw)
	fmt.Fprintf(w, "%s  %s\n", formatHeader(code), formatSchedule(catalog.Describe(code)))

	blocks := catalog.Blocks(code)
	if len(blocks) == 0 {
		fmt.Fprintf(w, "  %s\n", formatMuted("no blocks"))
		return
	}
	tokens := make([]string, 0, len(blocks))
	for _, b := range blocks {
		tokens = append(tokens, b.String())
	}
	fmt.Fprintf(w, "  %s %s\n", formatStats(plural(len(blocks), "block", "blocks")+":"), strings.Join(tokens, " "))
}

// paletteSwatches renders each palette color on its own background.
func paletteSwatches(palette []string) string {
	parts := make([]string, 0, len(palette))
	for _, c := range palette {
		parts = append(parts, formatSwatch(c, " "+c+" "))
	}
	return strings.Join(parts, " ")
}

// truncate shortens s to width display columns.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
