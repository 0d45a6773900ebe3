package view

import (
	"github.com/javiermolinar/recetario/internal/recipe"
)

// NutrientLine is one labeled nutrient value.
type NutrientLine struct {
	Label string
	Value string
}

// DetailModel is the display descriptor of the detail modal.
type DetailModel struct {
	Title       string
	Rating      string
	TotalTime   string
	PrepTime    string
	CookTime    string
	Serves      string
	Cuisine     string
	Origin      string
	Description string
	URL         string

	// Nil when the record has no ingredient list.
	Ingredients  []string
	Instructions []string
	Nutrients    []NutrientLine
}

// HasIngredients reports whether the ingredients section is shown.
func (d DetailModel) HasIngredients() bool { return d.Ingredients != nil }

// HasInstructions reports whether the instructions section is shown.
func (d DetailModel) HasInstructions() bool { return d.Instructions != nil }

// BuildDetail builds the modal descriptor for r. Empty or zero nutrient
// values are dropped.
func BuildDetail(r recipe.Summary) DetailModel {
	d := DetailModel{
		Title:        r.Title,
		Rating:       FormatRating(r.Rating),
		TotalTime:    FormatMinutes(r.TotalTime),
		PrepTime:     FormatMinutes(r.PrepTime),
		CookTime:     FormatMinutes(r.CookTime),
		Serves:       FormatServes(r.Serves),
		Cuisine:      FormatCuisine(r.Cuisine),
		Origin:       origin(r),
		Description:  FormatDescription(r.Description),
		URL:          r.URL,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
	}

	for _, n := range r.Nutrients {
		if n.Empty() {
			continue
		}
		d.Nutrients = append(d.Nutrients, NutrientLine{Label: FormatNutrientName(n.Name), Value: n.Value})
	}
	return d
}

func origin(r recipe.Summary) string {
	switch {
	case r.CountryState != "" && r.Continent != "":
		return r.CountryState + ", " + r.Continent
	case r.CountryState != "":
		return r.CountryState
	default:
		return r.Continent
	}
}
