// Package catalog turns course offering data into timetable sections.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/javiermolinar/horario/internal/timetable"
)

// InvalidSchedule is the readable text for a code that does not parse.
const InvalidSchedule = "invalid format"

// slotMinutes is the length of one class slot.
const slotMinutes = 50

// codePattern matches one "<days><shift><slots>" group, e.g. "24M12".
var codePattern = regexp.MustCompile(`(\d+)([MTN])(\d+)`)

// shiftSlots maps a shift letter and slot digit to a start time.
var shiftSlots = map[byte]map[byte]string{
	'M': {'1': "07:00", '2': "07:55", '3': "08:50", '4': "09:45", '5': "10:40", '6': "11:35"},
	'T': {'1': "13:00", '2': "13:55", '3': "14:50", '4': "15:45", '5': "16:40", '6': "17:35"},
	'N': {'1': "18:30", '2': "19:25", '3': "20:20", '4': "21:15"},
}

// Group is one parsed "<days><shift><slots>" part of a schedule code.
type Group struct {
	Days  string // Day digits, 2=Monday .. 7=Saturday
	Shift byte   // M, T or N
	Slots string // Slot digits within the shift
}

// ParseCode splits a schedule code into its groups.
func ParseCode(code string) []Group {
	matches := codePattern.FindAllStringSubmatch(code, -1)
	groups := make([]Group, 0, len(matches))
	for _, m := range matches {
		groups = append(groups, Group{Days: m[1], Shift: m[2][0], Slots: m[3]})
	}
	return groups
}

// CodeToken returns the schedule code of a raw schedule field, which may
// carry a trailing date range after a space.
func CodeToken(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// dayLabel maps a day digit to a grid day label.
func dayLabel(d byte) (string, bool) {
	i := int(d - '2')
	if i < 0 || i >= len(timetable.DefaultDays) {
		return "", false
	}
	return timetable.DefaultDays[i], true
}

// Blocks expands a code into grid coordinates: for each group, each day,
// each slot. Unknown days and slots are skipped, repeats are dropped.
func Blocks(code string) []timetable.Coordinate {
	var blocks []timetable.Coordinate
	seen := make(map[timetable.Coordinate]bool)
	for _, g := range ParseCode(code) {
		for i := 0; i < len(g.Days); i++ {
			day, ok := dayLabel(g.Days[i])
			if !ok {
				continue
			}
			for j := 0; j < len(g.Slots); j++ {
				start, ok := shiftSlots[g.Shift][g.Slots[j]]
				if !ok {
					continue
				}
				c := timetable.Coordinate{Day: day, Slot: start}
				if seen[c] {
					continue
				}
				seen[c] = true
				blocks = append(blocks, c)
			}
		}
	}
	return blocks
}

// Describe renders a code as readable text, e.g.
// "Monday and Wednesday from 07:00 to 08:45".
func Describe(code string) string {
	groups := ParseCode(code)
	if len(groups) == 0 {
		return InvalidSchedule
	}

	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		days := make([]string, 0, len(g.Days))
		for i := 0; i < len(g.Days); i++ {
			day, ok := dayLabel(g.Days[i])
			if !ok {
				day = "?"
			}
			days = append(days, day)
		}

		start, ok := shiftSlots[g.Shift][g.Slots[0]]
		if !ok {
			start = "?"
		}
		end := "N/A"
		if last, ok := shiftSlots[g.Shift][g.Slots[len(g.Slots)-1]]; ok {
			end = addMinutes(last, slotMinutes)
		}
		parts = append(parts, fmt.Sprintf("%s from %s to %s", strings.Join(days, " and "), start, end))
	}
	return strings.Join(parts, "; ")
}

// addMinutes adds mins to an "HH:MM" time.
func addMinutes(hhmm string, mins int) string {
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		return "N/A"
	}
	total := h*60 + m + mins
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
