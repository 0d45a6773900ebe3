package browse

import "github.com/javiermolinar/recetario/internal/recipe"

// Action is a user intent the Controller can apply.
type Action interface {
	actionName() string
}

// ChangePage moves to a page. Pages beyond ViewState.PageLimit are ignored.
type ChangePage struct{ Page int }

// ChangePageSize switches the page size and goes back to page 1.
type ChangePageSize struct{ Size int }

// ToggleDetails sets whether list pages carry the extended fields.
type ToggleDetails struct{ Include bool }

// Search sets the local filter term. It never fetches.
type Search struct{ Term string }

// OpenDetail opens the detail modal for a record.
type OpenDetail struct{ Record recipe.Summary }

// CloseDetail closes the detail modal.
type CloseDetail struct{}

// Reload fetches the current parameters again.
type Reload struct{}

// DismissError clears the error banner.
type DismissError struct{}

func (ChangePage) actionName() string     { return "change_page" }
func (ChangePageSize) actionName() string { return "change_page_size" }
func (ToggleDetails) actionName() string  { return "toggle_details" }
func (Search) actionName() string         { return "search" }
func (OpenDetail) actionName() string     { return "open_detail" }
func (CloseDetail) actionName() string    { return "close_detail" }
func (Reload) actionName() string         { return "reload" }
func (DismissError) actionName() string   { return "dismiss_error" }

// ActionName returns a short stable name for logging.
func ActionName(a Action) string {
	if a == nil {
		return "none"
	}
	return a.actionName()
}

// PageFetch asks the caller to fetch a page.
type PageFetch struct {
	Seq    uint64
	Params Params
	// ScrollTop asks the view to scroll to the top once this page is applied.
	ScrollTop bool
}

// DetailFetch asks the caller to fetch a single recipe.
type DetailFetch struct {
	Seq uint64
	ID  int64
}

// Effect is what the caller must do after a Dispatch.
type Effect struct {
	FetchPage   *PageFetch
	FetchDetail *DetailFetch
	// Changed is set when the view state was modified.
	Changed bool
}

// PageResult is the outcome of a PageFetch.
type PageResult struct {
	PageFetch
	Page *recipe.Page
	Err  error
}

// DetailResult is the outcome of a DetailFetch.
type DetailResult struct {
	DetailFetch
	Detail *recipe.Detail
	Err    error
}

// NeedsRefetch reports whether applying a to prev requires a server fetch.
// Search, detail and error actions never do.
func NeedsRefetch(prev ViewState, a Action) bool {
	switch a := a.(type) {
	case ChangePage:
		return a.Page >= 1 && a.Page <= prev.PageLimit()
	case ChangePageSize:
		return prev.PageSizeAllowed(a.Size)
	case ToggleDetails:
		return true
	case Reload:
		return true
	default:
		return false
	}
}

// NeedsDetailFetch reports whether opening r requires the detail endpoint.
func NeedsDetailFetch(r recipe.Summary) bool {
	return !r.HasDetails()
}
