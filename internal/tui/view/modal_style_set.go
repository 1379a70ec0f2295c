package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	MetaStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	SelectedStyle     lipgloss.Style
	WarningStyle      lipgloss.Style
	KeyStyle          lipgloss.Style
}

// BodyStyles returns the styles for line-based modal bodies.
func (s ModalStyleSet) BodyStyles() BodyStyles {
	return BodyStyles{
		BodyStyle:         s.BodyStyle,
		MetaStyle:         s.MetaStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		SelectedStyle:     s.SelectedStyle,
		WarningStyle:      s.WarningStyle,
	}
}

// ConfirmResetStyles returns the modal styles needed for reset confirmation.
func (s ModalStyleSet) ConfirmResetStyles() ConfirmResetStyles {
	return ConfirmResetStyles{
		BodyStyle: s.BodyStyle,
		MetaStyle: s.MetaStyle,
	}
}

// HelpStyles returns the modal styles needed for the help modal.
func (s ModalStyleSet) HelpStyles() HelpStyles {
	return HelpStyles{
		KeyStyle:  s.KeyStyle,
		BodyStyle: s.BodyStyle,
	}
}
