// Package tui provides the terminal user interface for horario.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/horario/internal/tui/theme"
	"github.com/javiermolinar/horario/internal/tui/view"
)

// Default column width - will be recalculated dynamically.
const defaultColWidth = 14

// timeColWidth fits a "HH:MM" slot label plus padding.
const timeColWidth = 7

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color
	colorSuccess     lipgloss.Color
	colorIntervalBg  lipgloss.Color

	// Header styles
	DayHeaderStyle       lipgloss.Style
	DayHeaderActiveStyle lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Grid cells
	EmptyCellStyle    lipgloss.Style
	CursorStyle       lipgloss.Style
	IntervalCellStyle lipgloss.Style
	SectionCellStyle  lipgloss.Style // Background is set per section color

	// Footer
	SelectionStyle     lipgloss.Style
	LegendStyle        lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	StatusStyle        lipgloss.Style
	HelpStyle          lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalSelectedStyle     lipgloss.Style
	ModalWarningStyle      lipgloss.Style
	ModalKeyStyle          lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style

	// Containers
	TableBorderStyle lipgloss.Style
	AppStyle         lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning
	s.colorSuccess = palette.Success
	s.colorIntervalBg = palette.IntervalBg

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(defaultColWidth)

	s.DayHeaderActiveStyle = s.DayHeaderStyle.
		Foreground(s.colorAccent)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(timeColWidth)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.CursorStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.IntervalCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Center).
		Foreground(s.colorFgMuted).
		Background(s.colorIntervalBg).
		Italic(true)

	s.SectionCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Left).
		Bold(true)

	s.SelectionStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.LegendStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	modal := palette.Modal
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modal.Bg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(72).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modal.Bg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Background(modal.Bg)

	s.ModalSelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true).
		Background(modal.Bg)

	s.ModalWarningStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(modal.Bg)

	s.ModalKeyStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true).
		Background(modal.Bg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(modal.Text).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(lipgloss.Color(theme.TextOn(string(modal.Highlight), string(s.colorBg), string(s.colorFg)))).
		Padding(0, 3).
		Underline(true)

	s.TableBorderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

// SectionCellStyleWidth returns the style for a cell owned by a section of the given color.
// Text color is picked for contrast against the section color.
func (s *Styles) SectionCellStyleWidth(color string, width int) lipgloss.Style {
	fg := theme.TextOn(color, string(s.colorBg), string(s.colorFg))
	return s.SectionCellStyle.
		Width(width).
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(fg))
}

// ModalStyleSet returns the modal body styles.
func (s *Styles) ModalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         s.ModalBodyStyle,
		MetaStyle:         s.ModalMetaStyle,
		SectionTitleStyle: s.ModalSectionTitleStyle,
		SelectedStyle:     s.ModalSelectedStyle,
		WarningStyle:      s.ModalWarningStyle,
		KeyStyle:          s.ModalKeyStyle,
	}
}

func (s *Styles) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		Frame:       s.ModalStyle,
		Header:      s.ModalHeaderStyle,
		Title:       s.ModalTitleStyle,
		Footer:      s.ModalFooterStyle,
		Body:        s.ModalBodyStyle,
		Hint:        s.ModalButtonStyle,
		HintPrimary: s.ModalButtonActiveStyle,
	}
}

func (s *Styles) gridStyles() view.GridStyles {
	return view.GridStyles{
		Border:          s.TableBorderStyle,
		TimeColumn:      s.TimeColumnStyle,
		DayHeader:       s.DayHeaderStyle,
		DayHeaderActive: s.DayHeaderActiveStyle,
		Empty:           s.EmptyCellStyle,
		Cursor:          s.CursorStyle,
		Interval:        s.IntervalCellStyle,
		Section:         s.SectionCellStyleWidth,
	}
}
