package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// MinCardWidth is the narrowest a card is laid out.
	MinCardWidth = 34
	// MaxGridColumns caps how many cards share a row.
	MaxGridColumns = 4

	descriptionLines = 2
)

// CardStyles groups styles for recipe cards.
type CardStyles struct {
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Title        lipgloss.Style
	Rating       lipgloss.Style
	Time         lipgloss.Style
	Description  lipgloss.Style
	Badge        lipgloss.Style
	Meta         lipgloss.Style
	Muted        lipgloss.Style
}

// GridColumns returns how many cards fit side by side in width.
func GridColumns(width int) int {
	if width <= 0 {
		return 1
	}
	return max(1, min(width/MinCardWidth, MaxGridColumns))
}

// Grid is a rendered card grid plus the line each row starts at.
type Grid struct {
	Content  string
	RowStart []int
	Columns  int
}

// RowOf returns the grid row holding card index i.
func (g Grid) RowOf(i int) int {
	if g.Columns <= 0 {
		return 0
	}
	return i / g.Columns
}

// RenderGrid lays cards out in rows that fill width.
func RenderGrid(cards []CardModel, width, selected int, s CardStyles) Grid {
	cols := GridColumns(width)
	cardW := width / cols
	frameW, _ := s.Card.GetFrameSize()
	innerW := max(cardW-frameW, 1)

	grid := Grid{Columns: cols}
	var rows []string
	line := 0
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))

		bodies := make([][]string, 0, end-start)
		height := 0
		for _, c := range cards[start:end] {
			lines := cardLines(c, innerW, s)
			height = max(height, len(lines))
			bodies = append(bodies, lines)
		}

		rendered := make([]string, 0, len(bodies))
		for i, lines := range bodies {
			for len(lines) < height {
				lines = append(lines, "")
			}
			style := s.Card
			if start+i == selected {
				style = s.CardSelected
			}
			rendered = append(rendered, style.Width(innerW).Render(strings.Join(lines, "\n")))
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
		grid.RowStart = append(grid.RowStart, line)
		line += lipgloss.Height(row)
		rows = append(rows, row)
	}

	grid.Content = strings.Join(rows, "\n")
	return grid
}

// RenderCard renders a single card at the given outer width.
func RenderCard(c CardModel, width int, selected bool, s CardStyles) string {
	style := s.Card
	if selected {
		style = s.CardSelected
	}
	frameW, _ := style.GetFrameSize()
	innerW := max(width-frameW, 1)
	return style.Width(innerW).Render(strings.Join(cardLines(c, innerW, s), "\n"))
}

func cardLines(c CardModel, width int, s CardStyles) []string {
	lines := make([]string, 0, 12)

	lines = append(lines, s.Title.Render(ansi.Truncate(c.Title, width, "…")))
	lines = append(lines, s.Rating.Render("★ "+c.Rating)+"  "+s.Time.Render("⏱ "+c.TotalTime))
	lines = append(lines, s.Meta.Render(ansi.Truncate("Prep "+c.PrepTime+" · Cook "+c.CookTime, width, "…")))

	desc := WrapTextToWidths(c.Description, width, width)
	if len(desc) > descriptionLines {
		desc = desc[:descriptionLines]
		desc[descriptionLines-1] = addEllipsis(strings.TrimRight(desc[descriptionLines-1], " "), width)
	}
	for _, d := range desc {
		lines = append(lines, s.Description.Render(d))
	}

	if c.ShowIngredients {
		lines = append(lines, "")
		lines = append(lines, s.Meta.Render("Ingredients ("+itoa(c.IngredientCount)+")"))
		for _, ing := range c.Ingredients {
			lines = append(lines, s.Description.Render(ansi.Truncate("• "+ing, width, "…")))
		}
		if c.More != "" {
			lines = append(lines, s.Muted.Render(c.More))
		}
	}

	lines = append(lines, "")
	badge := s.Badge.Render(ansi.Truncate(c.Cuisine, max(width/2, 1), "…"))
	lines = append(lines, badge+" "+s.Meta.Render(ansi.Truncate("🍽 "+c.Serves, max(width-lipgloss.Width(badge)-1, 0), "…")))
	return lines
}
