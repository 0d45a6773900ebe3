package view

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/recetario/internal/recipe"
)

// MaxCardIngredients is how many ingredients a card previews.
const MaxCardIngredients = 5

// CardModel is the display descriptor of one recipe card.
type CardModel struct {
	ID          int64
	Title       string
	Rating      string
	TotalTime   string
	PrepTime    string
	CookTime    string
	Description string
	Cuisine     string
	Serves      string

	// Ingredient preview, only set when the page carries details.
	ShowIngredients bool
	IngredientCount int
	Ingredients     []string
	More            string
}

// EmptyKind says which empty state, if any, replaces the card grid.
type EmptyKind int

const (
	EmptyNone EmptyKind = iota
	EmptyPage
	EmptySearch
)

// DisplayModel is everything needed to draw the result area.
type DisplayModel struct {
	Cards   []CardModel
	Empty   EmptyKind
	Message string
	Term    string
}

// BuildCards builds one card per record, in order.
func BuildCards(records []recipe.Summary, includeDetails bool) []CardModel {
	cards := make([]CardModel, 0, len(records))
	for _, r := range records {
		cards = append(cards, buildCard(r, includeDetails))
	}
	return cards
}

func buildCard(r recipe.Summary, includeDetails bool) CardModel {
	c := CardModel{
		ID:          r.ID,
		Title:       r.Title,
		Rating:      FormatRating(r.Rating),
		TotalTime:   FormatMinutes(r.TotalTime),
		PrepTime:    FormatMinutes(r.PrepTime),
		CookTime:    FormatMinutes(r.CookTime),
		Description: FormatDescription(r.Description),
		Cuisine:     FormatCuisine(r.Cuisine),
		Serves:      FormatServes(r.Serves),
	}

	if includeDetails && r.Ingredients != nil {
		c.ShowIngredients = true
		c.IngredientCount = len(r.Ingredients)
		n := min(len(r.Ingredients), MaxCardIngredients)
		c.Ingredients = append([]string(nil), r.Ingredients[:n]...)
		if extra := len(r.Ingredients) - MaxCardIngredients; extra > 0 {
			c.More = fmt.Sprintf("...and %d more", extra)
		}
	}
	return c
}

// BuildDisplay decides between the card grid and an empty state.
// The search empty state is only used when the page itself had records.
func BuildDisplay(loaded, filtered []recipe.Summary, includeDetails bool, term string) DisplayModel {
	term = strings.TrimSpace(term)
	if len(filtered) > 0 {
		return DisplayModel{Cards: BuildCards(filtered, includeDetails), Term: term}
	}
	if term != "" && len(loaded) > 0 {
		return DisplayModel{
			Empty:   EmptySearch,
			Message: fmt.Sprintf("No recipes found for %q", term),
			Term:    term,
		}
	}
	return DisplayModel{Empty: EmptyPage, Message: "No recipes found.", Term: term}
}
