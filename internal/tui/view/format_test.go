package view

import (
	"testing"

	"github.com/javiermolinar/recetario/internal/recipe"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name string
		in   *int
		want string
	}{
		{"absent", nil, NotAvailable},
		{"zero", intPtr(0), NotAvailable},
		{"value", intPtr(45), "45 min"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMinutes(tt.in); got != tt.want {
				t.Fatalf("FormatMinutes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRating(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"absent", nil, NotAvailable},
		{"zero", floatPtr(0), NotAvailable},
		{"whole", floatPtr(5), "5"},
		{"fraction", floatPtr(4.5), "4.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRating(tt.in); got != tt.want {
				t.Fatalf("FormatRating() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPlaceholders(t *testing.T) {
	if got := FormatServes(recipe.Serves("  ")); got != NotAvailable {
		t.Fatalf("FormatServes(blank) = %q", got)
	}
	if got := FormatServes(recipe.Serves("4 people")); got != "4 people" {
		t.Fatalf("FormatServes() = %q", got)
	}
	if got := FormatCuisine(""); got != UnknownCuisine {
		t.Fatalf("FormatCuisine(empty) = %q", got)
	}
	if got := FormatDescription(""); got != NoDescription {
		t.Fatalf("FormatDescription(empty) = %q", got)
	}
}

func TestFormatNutrientName(t *testing.T) {
	tests := map[string]string{
		"saturatedFatContent": "Saturated Fat Content",
		"calories":            "Calories",
		"Calories":            "Calories",
		"proteinContent":      "Protein Content",
		"":                    "",
	}
	for in, want := range tests {
		if got := FormatNutrientName(in); got != want {
			t.Fatalf("FormatNutrientName(%q) = %q, want %q", in, got, want)
		}
	}
}
