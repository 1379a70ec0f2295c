// Package tui provides the terminal user interface for horario.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/horario/internal/config"
	"github.com/javiermolinar/horario/internal/summary"
	"github.com/javiermolinar/horario/internal/timetable"
	"github.com/javiermolinar/horario/internal/tui/commands"
	"github.com/javiermolinar/horario/internal/tui/theme"
	"github.com/javiermolinar/horario/internal/tui/view"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone       ModalType = iota
	ModalCandidates           // Sections offered at the opened slot
	ModalSummary
	ModalConfirmReset
	ModalHelp
)

// Position represents a cursor position in the grid.
type Position struct {
	Day  int // Index into the layout days
	Slot int // Index into the selectable slots, intervals excluded
}

// candidateState is the open candidate list.
type candidateState struct {
	coord    timetable.Coordinate
	sections []timetable.Section
	selected int
	loading  bool
	failed   bool
	message  string
}

// summaryState is the open summary modal.
type summaryState struct {
	summary        *summary.Summary
	lines          []view.Line
	scroll         int
	insightPending bool
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	controller *timetable.Controller
	config     *config.Config
	projection *gridProjection // Display sink fed by the controller

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Grid shape, fixed for the session
	days  []string
	slots []string
	rows  []timetable.Row

	// State
	cursor    Position
	mode      Mode
	modalType ModalType

	candidates candidateState
	summary    summaryState

	// Overlay state
	overlay OverlayModel

	// Components
	prompt textinput.Model

	// Terminal dimensions and layout
	width        int
	height       int
	colWidth     int
	scrollOffset int // First visible grid row, intervals included
	layoutCache  LayoutCache

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// New creates a TUI model driving session through lookup.
// The model installs itself as the session's display sink.
// A nil cfg means config.Default.
func New(session *timetable.Session, lookup timetable.Lookup, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	ti := textinput.New()
	ti.Placeholder = "/summary"
	ti.Prompt = ""

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	projection := newGridProjection()
	projection.Sync(session.Cells())
	layout := session.Layout()

	m := &Model{
		controller: timetable.NewController(session, lookup, projection),
		config:     cfg,
		projection: projection,
		theme:      t,
		styles:     styles,
		days:       layout.Days(),
		slots:      layout.Slots(),
		rows:       layout.Rows(),
		mode:       ModeNormal,
		prompt:     ti,
		overlay:    NewOverlayModel(),
		colWidth:   defaultColWidth,
	}
	m.layoutCache = m.buildLayoutCache(0, 0)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller returns the controller driving the session.
func (m Model) Controller() *timetable.Controller {
	return m.controller
}

// cursorCoord returns the coordinate under the cursor.
func (m Model) cursorCoord() timetable.Coordinate {
	return timetable.Coordinate{Day: m.days[m.cursor.Day], Slot: m.slots[m.cursor.Slot]}
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(3 * time.Second)
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

func (m *Model) setError(err error) {
	m.err = err
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusTime = time.Now().Add(5 * time.Second)
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.candidates = candidateState{}
	m.summary = summaryState{}
}

// Run starts the TUI.
func Run(session *timetable.Session, lookup timetable.Lookup, cfg *config.Config) error {
	return RunWithDebug(session, lookup, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(session *timetable.Session, lookup timetable.Lookup, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(session, lookup, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
