package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Titles: bold cyan
	colorTitle = color.New(color.FgCyan, color.Bold)

	// Ratings: yellow to make them pop
	colorRating = color.New(color.FgYellow)

	// Times: green
	colorTime = color.New(color.FgGreen)

	// Cuisine badges: magenta
	colorCuisine = color.New(color.FgMagenta)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// isTerminal reports whether stdout is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatTitle(s string) string {
	return colorTitle.Sprint(s)
}

func formatRating(s string) string {
	return colorRating.Sprint(s)
}

func formatTime(s string) string {
	return colorTime.Sprint(s)
}

func formatCuisine(s string) string {
	return colorCuisine.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
