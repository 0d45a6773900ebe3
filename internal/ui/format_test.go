package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/javiermolinar/recetario/internal/recipe"
	"github.com/javiermolinar/recetario/internal/tui/view"
)

func TestParseOutput(t *testing.T) {
	tests := []struct {
		value   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", OutputText, false},
		{" JSON ", OutputJSON, false},
		{"yaml", OutputYAML, false},
		{"markdown", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := parseOutput(tt.value, OutputText, OutputJSON, OutputYAML)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseOutput(%q) err = %v", tt.value, err)
		}
		if got != tt.want {
			t.Fatalf("parseOutput(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Paella", 10, "Paella"},
		{"Spaghetti Carbonara", 10, "Spaghet..."},
		{"Crème brûlée", 8, "Crème..."},
		{"Paella", 2, "Pa"},
		{"Paella", -1, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRecipeMarkdown(t *testing.T) {
	r := recipe.Summary{
		Title:        "Pozole",
		Cuisine:      "Mexican",
		Continent:    "North America",
		CountryState: "Jalisco",
		URL:          "https://example.com/pozole",
		Ingredients:  []string{"hominy", "pork"},
		Instructions: []string{"Simmer."},
		Nutrients:    recipe.Nutrients{{Name: "proteinContent", Value: "30 g"}, {Name: "sugarContent", Value: ""}},
	}

	md := recipeMarkdown(r)
	for _, want := range []string{
		"# Pozole\n",
		"**Rating:** N/A",
		"**Origin:** Jalisco, North America",
		"No description available.",
		"Source: <https://example.com/pozole>",
		"## Ingredients (2)\n\n- hominy\n- pork\n",
		"## Instructions\n\n1. Simmer.\n",
		"| Protein Content | 30 g |",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in markdown:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Sugar") {
		t.Fatalf("empty nutrient rendered:\n%s", md)
	}
}

func TestRecipeMarkdownSummaryOnly(t *testing.T) {
	md := recipeMarkdown(recipe.Summary{})
	if !strings.HasPrefix(md, "# Recipe\n") {
		t.Fatalf("expected fallback title:\n%s", md)
	}
	for _, section := range []string{"## Ingredients", "## Instructions", "## Nutrition", "Source:"} {
		if strings.Contains(md, section) {
			t.Fatalf("unexpected %q in summary markdown", section)
		}
	}
}

func TestPrintCardWithIngredients(t *testing.T) {
	DisableColor()
	r := recipe.Summary{
		ID:           7,
		Title:        "Ramen",
		Cuisine:      "Japanese",
		Ingredients:  []string{"noodles", "broth", "egg", "nori", "scallion", "pork", "corn"},
		Instructions: []string{},
	}
	var buf bytes.Buffer
	printCard(&buf, view.BuildCards([]recipe.Summary{r}, true)[0], 120)

	got := buf.String()
	if !strings.Contains(got, "Ingredients (7): noodles, broth, egg, nori, scallion ...and 2 more") {
		t.Fatalf("unexpected card:\n%s", got)
	}
}
