package view

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/recetario/internal/recipe"
)

func TestRecentRows(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := RecentRows([]recipe.View{
		{RecipeID: 42, Title: "Tacos", Cuisine: "Mexican", ViewedAt: now.Add(-2 * time.Hour)},
		{RecipeID: 7, Title: "Toast", ViewedAt: now.Add(-3 * 24 * time.Hour)},
	}, now)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "42" || rows[0][1] != "Tacos" || rows[0][2] != "Mexican" || rows[0][3] != "2 hours ago" {
		t.Fatalf("unexpected first row: %q", rows[0])
	}
	if rows[1][2] != UnknownCuisine || rows[1][3] != "3 days ago" {
		t.Fatalf("unexpected second row: %q", rows[1])
	}
}

func TestRenderRecentTable(t *testing.T) {
	now := time.Now()
	if got := ansi.Strip(RenderRecentTable(nil, now, 60, 0, RecentStyles{})); got != "No recipes viewed yet." {
		t.Fatalf("unexpected empty table: %q", got)
	}

	out := ansi.Strip(RenderRecentTable([]recipe.View{
		{RecipeID: 1, Title: "Paella", Cuisine: "Spanish", ViewedAt: now.Add(-time.Minute)},
	}, now, 60, 0, RecentStyles{}))
	for _, want := range []string{"Recipe", "Paella", "Spanish"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}
