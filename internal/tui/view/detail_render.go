package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DetailStyles groups styles for the detail modal body.
type DetailStyles struct {
	Body          lipgloss.Style
	Rating        lipgloss.Style
	Time          lipgloss.Style
	Badge         lipgloss.Style
	Meta          lipgloss.Style
	SectionTitle  lipgloss.Style
	Label         lipgloss.Style
	Link          lipgloss.Style
	Hint          lipgloss.Style
	NutrientLabel lipgloss.Style
}

// RenderDetailBody renders the scrollable body of the detail modal.
// Sections absent from d are omitted entirely.
func RenderDetailBody(d DetailModel, width int, loading bool, s DetailStyles) string {
	width = max(width, 10)
	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }

	add(s.Rating.Render("★ "+d.Rating) + "  " +
		s.Time.Render("⏱ Total: "+d.TotalTime) + "  " +
		s.Meta.Render("🍽 "+d.Serves) + "  " +
		s.Badge.Render(d.Cuisine))

	meta := "Prep " + d.PrepTime + " · Cook " + d.CookTime
	if d.Origin != "" {
		meta += " · " + d.Origin
	}
	add(s.Meta.Render(meta), "")

	for _, l := range WrapTextToWidths(d.Description, width, width) {
		add(s.Body.Render(l))
	}

	if d.URL != "" {
		add("", s.Label.Render("Source: ")+s.Link.Render(d.URL))
	}

	if loading {
		add("", s.Hint.Render("Loading full recipe…"))
	}

	if d.HasIngredients() {
		add("", s.SectionTitle.Render(fmt.Sprintf("Ingredients (%d)", len(d.Ingredients))))
		for _, ing := range d.Ingredients {
			for _, l := range wrapTextWithPrefix(ing, "  • ", "    ", width) {
				add(s.Body.Render(l))
			}
		}
	}

	if d.HasInstructions() {
		add("", s.SectionTitle.Render("Instructions"))
		numW := len(fmt.Sprint(len(d.Instructions)))
		for i, step := range d.Instructions {
			prefix := fmt.Sprintf("  %*d. ", numW, i+1)
			for _, l := range wrapTextWithPrefix(step, prefix, strings.Repeat(" ", len(prefix)), width) {
				add(s.Body.Render(l))
			}
		}
	}

	if len(d.Nutrients) > 0 {
		add("", s.SectionTitle.Render("Nutrition Information"))
		labelW := 0
		for _, n := range d.Nutrients {
			labelW = max(labelW, runewidth.StringWidth(n.Label))
		}
		for _, n := range d.Nutrients {
			label := runewidth.FillRight(n.Label, labelW)
			add("  " + s.NutrientLabel.Render(label) + "  " + s.Body.Render(n.Value))
		}
	}

	return strings.Join(lines, "\n")
}
