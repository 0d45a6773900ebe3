package view

// DetailFooter renders the footer for the recipe detail modal. The copy
// button is shown only when the recipe has a source URL.
func DetailFooter(hasURL bool, styles ModalStyles) string {
	labels := []string{"[Esc] Close", "[j/k] Scroll"}
	if hasURL {
		labels = append(labels, "[y] Copy URL")
	}
	return ButtonRow(styles, true, labels...)
}

// RecentFooter renders the footer for the recently viewed modal.
func RecentFooter(styles ModalStyles) string {
	return ButtonRow(styles, true, "[Enter] Open", "[j/k] Move", "[Esc] Close")
}

// HelpFooter renders the footer for the key help modal.
func HelpFooter(styles ModalStyles) string {
	return ButtonRow(styles, false, "[Esc] Close")
}
