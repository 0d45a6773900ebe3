package view

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/javiermolinar/recetario/internal/recipe"
)

// PaginationModel is the display descriptor of the pagination bar.
type PaginationModel struct {
	Info          string
	Page          int
	TotalPages    int
	FirstDisabled bool
	PrevDisabled  bool
	NextDisabled  bool
	LastDisabled  bool
}

// BuildPagination builds the pagination bar for the applied page. Prev and
// next follow the server flags; first and last compare the page number.
func BuildPagination(p recipe.Pagination, page int) PaginationModel {
	total := max(p.TotalPages, 1)
	return PaginationModel{
		Info:          fmt.Sprintf("Page %d of %d (%s total recipes)", page, total, humanize.Comma(int64(p.TotalRecords))),
		Page:          page,
		TotalPages:    total,
		FirstDisabled: page == 1,
		PrevDisabled:  !p.HasPrev,
		NextDisabled:  !p.HasNext,
		LastDisabled:  page == total,
	}
}
