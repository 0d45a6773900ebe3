// Package browse holds the view state of the recipe browser and the
// controller that keeps it in sync with the API.
package browse

import (
	"slices"

	"github.com/javiermolinar/recetario/internal/recipe"
)

// DefaultPageSize is used when the configured page size is not allowed.
const DefaultPageSize = 10

// DefaultPageSizes is the allowed page size set when none is configured.
var DefaultPageSizes = []int{5, 10, 20, 50, 100}

// Params is the parameter set that determines which page the server returns.
type Params struct {
	Page           int
	PageSize       int
	IncludeDetails bool
}

// DetailView is the open detail modal.
type DetailView struct {
	Record  recipe.Summary
	Loading bool
	// Fetched is set once the detail endpoint answered for this modal.
	Fetched bool
	// Err is the detail fetch failure, if any. It is never shown as a banner.
	Err error

	seq uint64
}

// ViewState is everything the renderer needs.
type ViewState struct {
	Page           int
	PageSize       int
	PageSizes      []int
	IncludeDetails bool
	SearchTerm     string

	// Loaded is the record list of the last successfully applied page.
	Loaded     []recipe.Summary
	Pagination recipe.Pagination
	// loadedSize is the page size Pagination was computed for.
	loadedSize int
	// Ready is set after the first page has been applied.
	Ready   bool
	Loading bool
	Err     error

	Detail *DetailView
}

// Params returns the current fetch parameters.
func (s ViewState) Params() Params {
	return Params{Page: s.Page, PageSize: s.PageSize, IncludeDetails: s.IncludeDetails}
}

// TotalPages is Pagination.TotalPages, never less than 1.
func (s ViewState) TotalPages() int {
	return max(s.Pagination.TotalPages, 1)
}

// PageLimit is the last page ChangePage may move to. While a page with a
// different page size is pending, the total is unknown and only page 1 is
// reachable.
func (s ViewState) PageLimit() int {
	if s.Ready && s.loadedSize != s.PageSize {
		return 1
	}
	return s.TotalPages()
}

// Filtered returns the loaded records that match the search term.
func (s ViewState) Filtered() []recipe.Summary {
	return recipe.Filter(s.Loaded, s.SearchTerm)
}

// PageSizeAllowed reports whether size is one of the allowed page sizes.
func (s ViewState) PageSizeAllowed(size int) bool {
	return slices.Contains(s.PageSizes, size)
}

// StepPageSize returns the allowed page size dir steps away from the current
// one, clamped to the ends of the list.
func (s ViewState) StepPageSize(dir int) int {
	if len(s.PageSizes) == 0 {
		return s.PageSize
	}
	idx := slices.Index(s.PageSizes, s.PageSize)
	if idx < 0 {
		idx = 0
		for i, size := range s.PageSizes {
			if size <= s.PageSize {
				idx = i
			}
		}
	}
	idx += dir
	idx = max(0, min(idx, len(s.PageSizes)-1))
	return s.PageSizes[idx]
}
