package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/recetario/internal/recipe"
	"github.com/javiermolinar/recetario/internal/tui/view"
)

// OutputFormat selects how a command prints its result.
type OutputFormat string

const (
	OutputText     OutputFormat = "text"
	OutputJSON     OutputFormat = "json"
	OutputYAML     OutputFormat = "yaml"
	OutputMarkdown OutputFormat = "markdown"
)

// parseOutput validates an --output value against the formats a command supports.
func parseOutput(value string, allowed ...OutputFormat) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(value)))
	if slices.Contains(allowed, f) {
		return f, nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", fmt.Errorf("invalid output %q: must be one of %s", value, strings.Join(names, ", "))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// truncate shortens s to width display columns.
func truncate(s string, width int) string {
	if width <= 3 {
		return runewidth.Truncate(s, max(width, 0), "")
	}
	return runewidth.Truncate(s, width, "...")
}

// printCard prints one recipe as an indented block of text lines.
func printCard(w io.Writer, c view.CardModel, width int) {
	id := fmt.Sprintf("#%d", c.ID)
	fmt.Fprintf(w, "  %s  %s  %s\n",
		formatMuted(id),
		formatTitle(truncate(c.Title, width-len(id)-len(c.Cuisine)-8)),
		formatCuisine(c.Cuisine))

	fmt.Fprintf(w, "      %s  %s  %s\n",
		formatRating("★ "+c.Rating),
		formatTime("⏱ "+c.TotalTime),
		formatMuted("🍽 "+c.Serves))

	fmt.Fprintf(w, "      %s\n", truncate(c.Description, width-6))

	if c.ShowIngredients {
		line := fmt.Sprintf("Ingredients (%d): %s", c.IngredientCount, strings.Join(c.Ingredients, ", "))
		if c.More != "" {
			line += " " + c.More
		}
		fmt.Fprintf(w, "      %s\n", formatMuted(truncate(line, width-6)))
	}
}

// recipeMarkdown renders a full recipe as markdown.
func recipeMarkdown(r recipe.Summary) string {
	d := view.BuildDetail(r)
	title := d.Title
	if title == "" {
		title = "Recipe"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Rating:** %s · **Total:** %s · **Prep:** %s · **Cook:** %s · **Serves:** %s\n\n",
		d.Rating, d.TotalTime, d.PrepTime, d.CookTime, d.Serves)

	fmt.Fprintf(&b, "**Cuisine:** %s", d.Cuisine)
	if d.Origin != "" {
		fmt.Fprintf(&b, " · **Origin:** %s", d.Origin)
	}
	b.WriteString("\n\n")

	b.WriteString(d.Description + "\n\n")

	if d.URL != "" {
		fmt.Fprintf(&b, "Source: <%s>\n\n", d.URL)
	}

	if d.HasIngredients() {
		fmt.Fprintf(&b, "## Ingredients (%d)\n\n", len(d.Ingredients))
		for _, ing := range d.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
		b.WriteString("\n")
	}

	if d.HasInstructions() {
		b.WriteString("## Instructions\n\n")
		for i, step := range d.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}

	if len(d.Nutrients) > 0 {
		b.WriteString("## Nutrition\n\n| Nutrient | Value |\n| --- | --- |\n")
		for _, n := range d.Nutrients {
			fmt.Fprintf(&b, "| %s | %s |\n", n.Label, n.Value)
		}
	}

	return b.String()
}

// renderMarkdown renders md for the terminal. Without styling it uses the
// plain text style so piped output carries no escape codes.
func renderMarkdown(md string, width int, styled bool) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if styled {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
