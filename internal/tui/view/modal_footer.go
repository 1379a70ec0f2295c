package view

var (
	keyClose  = Key{Key: "Esc", Action: "Close"}
	keyCopy   = Key{Key: "y", Action: "Copy"}
	keyScroll = Key{Key: "j/k", Action: "Scroll"}

	// ConfirmResetKeys are the keys of the clear-timetable prompt.
	ConfirmResetKeys = []Key{{Key: "y/Enter", Action: "Clear"}, {Key: "n/Esc", Action: "Cancel"}}
	// HelpKeys are the keys of the help modal.
	HelpKeys = []Key{keyClose}
)

// CandidatesKeys returns the keys that apply to the candidate list as it is now.
func CandidatesKeys(model CandidatesModel) []Key {
	switch {
	case model.Loading:
		return []Key{{Key: "Esc", Action: "Cancel"}}
	case model.Failed:
		return []Key{{Key: "r", Action: "Retry"}, keyClose}
	case len(model.Items) == 0:
		return []Key{keyClose}
	}
	return []Key{{Key: "Enter", Action: "Choose"}, {Key: "j/k", Action: "Move"}, keyClose}
}

// SummaryKeys returns the summary keys. Insight is offered until one is loaded.
func SummaryKeys(hasInsight bool) []Key {
	if hasInsight {
		return []Key{keyCopy, keyScroll, keyClose}
	}
	return []Key{keyCopy, {Key: "i", Action: "Insight"}, keyScroll, keyClose}
}
