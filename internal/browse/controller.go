package browse

import (
	"errors"
	"slices"

	"github.com/go-logr/logr"
)

// Options configures a new Controller.
type Options struct {
	PageSize       int
	PageSizes      []int
	IncludeDetails bool
	Logger         logr.Logger
}

// Controller owns a ViewState. It is not safe for concurrent use; the caller
// serializes Dispatch and the Complete methods.
type Controller struct {
	state ViewState

	pageSeq   uint64
	detailSeq uint64
	// good is the parameter set of the last applied page.
	good Params

	log logr.Logger
}

// New returns a controller in the initial state. No request is issued until
// the caller dispatches Reload.
func New(opts Options) *Controller {
	sizes := slices.Clone(opts.PageSizes)
	if len(sizes) == 0 {
		sizes = slices.Clone(DefaultPageSizes)
	}
	slices.Sort(sizes)
	sizes = slices.Compact(sizes)

	size := opts.PageSize
	if !slices.Contains(sizes, size) {
		size = DefaultPageSize
		if !slices.Contains(sizes, size) {
			size = sizes[0]
		}
	}

	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	c := &Controller{
		state: ViewState{
			Page:           1,
			PageSize:       size,
			PageSizes:      sizes,
			IncludeDetails: opts.IncludeDetails,
		},
		log: log,
	}
	c.good = c.state.Params()
	return c
}

// State returns a snapshot of the view state.
func (c *Controller) State() ViewState {
	return c.state
}

// Dispatch applies a and reports what the caller has to do next.
func (c *Controller) Dispatch(a Action) Effect {
	refetch := NeedsRefetch(c.state, a)

	switch a := a.(type) {
	case ChangePage:
		if !refetch {
			c.log.V(1).Info("page out of range", "page", a.Page, "page_limit", c.state.PageLimit())
			return Effect{}
		}
		c.state.Page = a.Page
		return c.issuePage(true)

	case ChangePageSize:
		if !refetch {
			c.log.V(1).Info("page size not allowed", "size", a.Size)
			return Effect{}
		}
		c.state.PageSize = a.Size
		c.state.Page = 1
		return c.issuePage(false)

	case ToggleDetails:
		c.state.IncludeDetails = a.Include
		return c.issuePage(false)

	case Reload:
		return c.issuePage(false)

	case Search:
		if c.state.SearchTerm == a.Term {
			return Effect{}
		}
		c.state.SearchTerm = a.Term
		return Effect{Changed: true}

	case OpenDetail:
		dv := &DetailView{Record: a.Record}
		c.state.Detail = dv
		if !NeedsDetailFetch(a.Record) {
			return Effect{Changed: true}
		}
		c.detailSeq++
		dv.seq = c.detailSeq
		dv.Loading = true
		return Effect{
			Changed:     true,
			FetchDetail: &DetailFetch{Seq: dv.seq, ID: a.Record.ID},
		}

	case CloseDetail:
		if c.state.Detail == nil {
			return Effect{}
		}
		c.state.Detail = nil
		return Effect{Changed: true}

	case DismissError:
		if c.state.Err == nil {
			return Effect{}
		}
		c.state.Err = nil
		return Effect{Changed: true}
	}

	return Effect{}
}

func (c *Controller) issuePage(scrollTop bool) Effect {
	c.pageSeq++
	c.state.Loading = true
	return Effect{
		Changed: true,
		FetchPage: &PageFetch{
			Seq:       c.pageSeq,
			Params:    c.state.Params(),
			ScrollTop: scrollTop,
		},
	}
}

// CompletePage applies the result of a page fetch. Results of superseded
// requests are dropped and applied is false. When the server reports fewer
// pages than the requested one, the records are not applied and next is the
// fetch for the last existing page.
func (c *Controller) CompletePage(res PageResult) (applied bool, next *PageFetch) {
	if res.Seq != c.pageSeq || res.Params != c.state.Params() {
		c.log.V(1).Info("stale page response dropped", "seq", res.Seq, "latest", c.pageSeq, "page", res.Params.Page)
		return false, nil
	}

	c.state.Loading = false

	if res.Err != nil || res.Page == nil {
		err := res.Err
		if err == nil {
			err = errEmptyPage
		}
		c.state.Err = err
		c.state.Page = c.good.Page
		c.state.PageSize = c.good.PageSize
		c.state.IncludeDetails = c.good.IncludeDetails
		c.log.V(1).Info("page fetch failed", "seq", res.Seq, "error", errString(res.Err))
		return true, nil
	}

	p := res.Page.Pagination
	p.TotalPages = max(p.TotalPages, 1)

	if res.Params.Page > p.TotalPages {
		c.log.V(1).Info("page beyond total, refetching last page", "page", res.Params.Page, "total_pages", p.TotalPages)
		c.state.Page = p.TotalPages
		return true, c.issuePage(true).FetchPage
	}

	page := p.CurrentPage
	if page < 1 {
		page = res.Params.Page
	}
	page = max(1, min(page, p.TotalPages))
	p.CurrentPage = page

	c.state.Loaded = res.Page.Records
	c.state.Pagination = p
	c.state.loadedSize = res.Params.PageSize
	c.state.Page = page
	c.state.Ready = true
	c.state.Err = nil
	c.good = c.state.Params()
	return true, nil
}

// CompleteDetail applies the result of a detail fetch to the open modal.
// Results for a closed or replaced modal are dropped.
func (c *Controller) CompleteDetail(res DetailResult) bool {
	dv := c.state.Detail
	if dv == nil || dv.seq != res.Seq {
		c.log.V(1).Info("stale detail response dropped", "seq", res.Seq, "id", res.ID)
		return false
	}

	dv.Loading = false
	if res.Err != nil || res.Detail == nil {
		dv.Err = res.Err
		c.log.V(1).Info("detail fetch failed, showing summary", "id", res.ID, "error", errString(res.Err))
		return true
	}

	dv.Record = res.Detail.Summary
	dv.Fetched = true
	return true
}

var errEmptyPage = errors.New("empty page response")

func errString(err error) string {
	if err == nil {
		return "empty response"
	}
	return err.Error()
}
