package view

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/javiermolinar/recetario/internal/recipe"
)

// RecentStyles groups styles for the recently viewed table.
type RecentStyles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
}

// RecentRows turns history entries into table rows relative to now.
func RecentRows(views []recipe.View, now time.Time) [][]string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			strconv.FormatInt(v.RecipeID, 10),
			v.Title,
			FormatCuisine(v.Cuisine),
			humanize.RelTime(v.ViewedAt, now, "ago", "from now"),
		})
	}
	return rows
}

// RenderRecentTable renders the history table with the selected row highlighted.
func RenderRecentTable(views []recipe.View, now time.Time, width, selected int, s RecentStyles) string {
	if len(views) == 0 {
		return s.Muted.Render("No recipes viewed yet.")
	}

	rows := RecentRows(views, now)
	t := table.New().
		Headers("ID", "Recipe", "Cuisine", "Viewed").
		Rows(rows...).
		Width(max(width, 20)).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Border).
		BorderRow(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.Header
			case row == selected:
				return s.Selected
			case col == 0 || col == 3:
				return s.Muted
			default:
				return s.Cell
			}
		})
	return t.Render()
}
