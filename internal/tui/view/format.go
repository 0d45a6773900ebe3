// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/javiermolinar/recetario/internal/recipe"
)

const (
	NotAvailable   = "N/A"
	NoDescription  = "No description available."
	UnknownCuisine = "Unknown"
)

// FormatMinutes formats an optional duration as "N min". Absent and zero
// values render as N/A.
func FormatMinutes(minutes *int) string {
	if minutes == nil || *minutes == 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%d min", *minutes)
}

// FormatRating formats an optional rating. Absent and zero render as N/A.
func FormatRating(rating *float64) string {
	if rating == nil || *rating == 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64)
}

// FormatServes returns the serves text or N/A.
func FormatServes(s recipe.Serves) string {
	if v := strings.TrimSpace(string(s)); v != "" {
		return v
	}
	return NotAvailable
}

// FormatCuisine returns the cuisine or "Unknown".
func FormatCuisine(cuisine string) string {
	if v := strings.TrimSpace(cuisine); v != "" {
		return v
	}
	return UnknownCuisine
}

// FormatDescription returns the description or the placeholder text.
func FormatDescription(description string) string {
	if v := strings.TrimSpace(description); v != "" {
		return v
	}
	return NoDescription
}

// FormatNutrientName turns a camelCase key into a label:
// "saturatedFatContent" becomes "Saturated Fat Content".
func FormatNutrientName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	out := []rune(b.String())
	if len(out) > 0 {
		out[0] = unicode.ToUpper(out[0])
	}
	return strings.TrimSpace(string(out))
}
