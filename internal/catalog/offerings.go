package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/javiermolinar/horario/internal/timetable"
)

// Defaults for missing offering fields.
const (
	NoInstructor = "not informed"
	NoLocation   = "N/A"
)

// offering is one course entry of an offerings file.
type offering struct {
	Course   string            `json:"disciplina"`
	Sections []offeringSection `json:"turmas"`
}

type offeringSection struct {
	Label      string      `json:"turma"`
	Instructor instructors `json:"docente"`
	Schedule   string      `json:"horario"`
	Location   *string     `json:"local"`
}

// instructors accepts either a single name or a list of names.
type instructors struct {
	names string
	set   bool
}

func (in *instructors) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		in.names, in.set = one, true
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		in.names, in.set = strings.Join(many, " and "), true
		return nil
	}
	// Any other shape is treated as missing.
	return nil
}

func (in instructors) String() string {
	if !in.set {
		return NoInstructor
	}
	return in.names
}

// csvRow is one section row of a CSV offerings file.
type csvRow struct {
	Course     string `csv:"course"`
	Section    string `csv:"section"`
	Instructor string `csv:"instructor"`
	Schedule   string `csv:"schedule"`
	Location   string `csv:"location"`
}

// LoadJSON reads an offerings JSON document. Section IDs are assigned
// from 0 in file order.
func LoadJSON(r io.Reader) ([]timetable.Section, error) {
	var offerings []offering
	if err := json.NewDecoder(r).Decode(&offerings); err != nil {
		return nil, fmt.Errorf("decoding offerings: %w", err)
	}

	var sections []timetable.Section
	for _, o := range offerings {
		for _, s := range o.Sections {
			location := NoLocation
			if s.Location != nil {
				location = *s.Location
			}
			sections = append(sections, NewSection(int64(len(sections)), o.Course, s.Label, s.Instructor.String(), s.Schedule, location))
		}
	}
	return sections, nil
}

// LoadCSV reads a CSV offerings file with the header
// course,section,instructor,schedule,location. Multiple instructors are
// separated by ';'.
func LoadCSV(r io.Reader) ([]timetable.Section, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decoding offerings csv: %w", err)
	}

	sections := make([]timetable.Section, 0, len(rows))
	for _, row := range rows {
		instructor := NoInstructor
		if names := splitNames(row.Instructor); len(names) > 0 {
			instructor = strings.Join(names, " and ")
		}
		location := strings.TrimSpace(row.Location)
		if location == "" {
			location = NoLocation
		}
		sections = append(sections, NewSection(int64(len(sections)), row.Course, row.Section, instructor, row.Schedule, location))
	}
	return sections, nil
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ";") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// LoadFile reads an offerings file; ".csv" files are CSV, anything else JSON.
func LoadFile(path string) ([]timetable.Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening offerings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(f)
	}
	return LoadJSON(f)
}

// NewSection builds a section from raw offering fields.
func NewSection(id int64, course, label, instructor, rawSchedule, location string) timetable.Section {
	code := CodeToken(rawSchedule)
	return timetable.Section{
		ID:         id,
		Name:       course,
		Label:      label,
		Instructor: instructor,
		Code:       code,
		Schedule:   Describe(code),
		Location:   location,
		Blocks:     Blocks(code),
	}
}
