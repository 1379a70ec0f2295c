package catalog

import (
	"reflect"
	"testing"

	"github.com/javiermolinar/horario/internal/timetable"
)

func at(day, slot string) timetable.Coordinate {
	return timetable.Coordinate{Day: day, Slot: slot}
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []timetable.Coordinate
	}{
		{
			name: "two days two slots",
			code: "24M12",
			want: []timetable.Coordinate{
				at("Monday", "07:00"), at("Monday", "07:55"),
				at("Wednesday", "07:00"), at("Wednesday", "07:55"),
			},
		},
		{
			name: "afternoon",
			code: "6T34",
			want: []timetable.Coordinate{at("Friday", "14:50"), at("Friday", "15:45")},
		},
		{
			name: "two groups",
			code: "3N12 7M6",
			want: []timetable.Coordinate{at("Tuesday", "18:30"), at("Tuesday", "19:25"), at("Saturday", "11:35")},
		},
		{
			name: "unknown day and slot skipped",
			code: "17N15",
			want: []timetable.Coordinate{at("Saturday", "18:30")},
		},
		{
			name: "invalid",
			code: "xyz",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blocks(tt.code)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Blocks(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestBlocks_AreValidGridCoordinates(t *testing.T) {
	layout := timetable.DefaultLayout()
	for _, code := range []string{"234567M123456", "234567T123456", "234567N1234"} {
		blocks := Blocks(code)
		if len(blocks) == 0 {
			t.Fatalf("no blocks for %s", code)
		}
		for _, b := range blocks {
			if !layout.Valid(b) {
				t.Errorf("%s produced invalid coordinate %s", code, b)
			}
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"24M12", "Monday and Wednesday from 07:00 to 08:45"},
		{"6T6", "Friday from 17:35 to 18:25"},
		{"35N34", "Tuesday and Thursday from 20:20 to 22:05"},
		{"2M1 4T2", "Monday from 07:00 to 07:50; Wednesday from 13:55 to 14:45"},
		{"2N9", "Monday from ? to N/A"},
		{"", InvalidSchedule},
		{"abc", InvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := Describe(tt.code); got != tt.want {
				t.Errorf("Describe(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestCodeToken(t *testing.T) {
	if got := CodeToken("24M12 (05/08/2024 - 14/12/2024)"); got != "24M12" {
		t.Errorf("CodeToken = %q", got)
	}
	if got := CodeToken("   "); got != "" {
		t.Errorf("CodeToken(blank) = %q", got)
	}
}
