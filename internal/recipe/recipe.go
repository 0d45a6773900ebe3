// Package recipe defines the recipe records served by the API and the
// pure operations over them.
package recipe

// Summary is a recipe record as returned by the list endpoint.
// The extended fields (Ingredients, Instructions, URL, Nutrients) are only
// present when the page was requested with details, or when the record came
// from the detail endpoint.
type Summary struct {
	ID           int64    `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Rating       *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	PrepTime     *int     `json:"prep_time,omitempty" yaml:"prep_time,omitempty"`
	CookTime     *int     `json:"cook_time,omitempty" yaml:"cook_time,omitempty"`
	TotalTime    *int     `json:"total_time,omitempty" yaml:"total_time,omitempty"`
	Cuisine      string   `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	Serves       Serves   `json:"serves,omitempty" yaml:"serves,omitempty"`
	Continent    string   `json:"continent,omitempty" yaml:"continent,omitempty"`
	CountryState string   `json:"country_state,omitempty" yaml:"country_state,omitempty"`

	Ingredients  []string  `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Instructions []string  `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	URL          string    `json:"url,omitempty" yaml:"url,omitempty"`
	Nutrients    Nutrients `json:"nutrients,omitempty" yaml:"nutrients,omitempty"`
}

// HasDetails reports whether the record already carries both ingredients and
// instructions, so opening it needs no detail fetch.
func (s Summary) HasDetails() bool {
	return s.Ingredients != nil && s.Instructions != nil
}

// Detail is a recipe returned by the detail endpoint.
type Detail struct {
	Summary
}

// Pagination is the pagination block of a list response.
type Pagination struct {
	CurrentPage  int  `json:"current_page" yaml:"current_page"`
	PerPage      int  `json:"per_page" yaml:"per_page"`
	TotalPages   int  `json:"total_pages" yaml:"total_pages"`
	TotalRecords int  `json:"total_recipes" yaml:"total_recipes"`
	HasPrev      bool `json:"has_prev" yaml:"has_prev"`
	HasNext      bool `json:"has_next" yaml:"has_next"`
}

// Page is one successfully fetched page of summaries.
type Page struct {
	Records    []Summary  `json:"data" yaml:"data"`
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}
