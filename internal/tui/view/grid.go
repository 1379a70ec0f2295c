package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/horario/internal/timetable"
)

const (
	// TimeColumnLabel heads the slot label column.
	TimeColumnLabel = "Time"
	// IntervalLabel fills the cells of a break row.
	IntervalLabel = "break"
	freeCursor    = " +"
)

// GridStyles are the styles of the week grid.
type GridStyles struct {
	Border          lipgloss.Style
	TimeColumn      lipgloss.Style
	DayHeader       lipgloss.Style
	DayHeaderActive lipgloss.Style
	Empty           lipgloss.Style
	Cursor          lipgloss.Style
	Interval        lipgloss.Style
	// Section styles a cell filled with its section's color.
	Section func(color string, width int) lipgloss.Style
}

// Grid is the visible window of the week grid.
type Grid struct {
	Width    int // Box width, borders included
	Height   int
	ColWidth int
	Days     []string
	Rows     []timetable.Row // Visible rows, intervals included
	Cells    map[timetable.Coordinate]timetable.CellView
	Cursor   timetable.Coordinate
	Styles   GridStyles
	Bg       lipgloss.Color
}

// RenderGrid draws the grid as a lipgloss table. A coordinate missing from
// Cells, or present but not occupied, is drawn free.
func RenderGrid(g Grid) string {
	if g.Height <= 0 || len(g.Rows) == 0 {
		return ""
	}

	headers, headerStyles := g.header()
	rows := make([][]string, len(g.Rows))
	styles := make([][]lipgloss.Style, len(g.Rows))
	for i, row := range g.Rows {
		rows[i], styles[i] = g.row(row)
	}

	t := table.New().
		Headers(headers...).
		Width(max(0, g.Width-2)).
		Height(g.Height).
		Border(lipgloss.RoundedBorder()).
		BorderRow(false).
		BorderStyle(g.Styles.Border).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleAt(headerStyles, col)
			}
			if row < 0 || row >= len(styles) {
				return lipgloss.NewStyle()
			}
			return styleAt(styles[row], col)
		})

	return Place(g.Width, g.Height, lipgloss.Top, t.Render(), g.Bg)
}

// header labels each day by its short name; the cursor's day is starred.
func (g Grid) header() ([]string, []lipgloss.Style) {
	labels := []string{TimeColumnLabel}
	styles := []lipgloss.Style{g.Styles.TimeColumn}
	for _, day := range g.Days {
		label, style := DayShortName(day), g.Styles.DayHeader
		if day == g.Cursor.Day {
			label, style = "*"+label+"*", g.Styles.DayHeaderActive
		}
		labels = append(labels, label)
		styles = append(styles, style.Width(g.ColWidth))
	}
	return labels, styles
}

func (g Grid) row(row timetable.Row) ([]string, []lipgloss.Style) {
	texts := []string{row.Label}
	styles := []lipgloss.Style{g.Styles.TimeColumn}
	for _, day := range g.Days {
		text, style := g.cell(timetable.Coordinate{Day: day, Slot: row.Label}, row.Interval)
		texts = append(texts, text)
		styles = append(styles, style)
	}
	return texts, styles
}

func (g Grid) cell(c timetable.Coordinate, interval bool) (string, lipgloss.Style) {
	w := g.ColWidth
	if interval {
		return IntervalLabel, g.Styles.Interval.Width(w)
	}
	atCursor := c == g.Cursor
	if v, ok := g.Cells[c]; ok && v.Occupied {
		style := lipgloss.NewStyle().Width(w)
		if g.Styles.Section != nil {
			style = g.Styles.Section(v.Color, w)
		}
		if atCursor {
			style = style.Underline(true).Reverse(true)
		}
		return " " + runewidth.Truncate(v.ShortName, max(1, w-2), "…"), style
	}
	if atCursor {
		return freeCursor, g.Styles.Cursor.Width(w)
	}
	return "", g.Styles.Empty.Width(w)
}

func styleAt(styles []lipgloss.Style, i int) lipgloss.Style {
	if i < 0 || i >= len(styles) {
		return lipgloss.NewStyle()
	}
	return styles[i]
}

// DayShortName returns the first three letters of a day label.
func DayShortName(day string) string {
	runes := []rune(day)
	if len(runes) <= 3 {
		return day
	}
	return string(runes[:3])
}
