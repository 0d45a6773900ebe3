// Package api is the HTTP client for the recipe API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/javiermolinar/recetario/internal/recipe"
)

const (
	opListRecipes = "list recipes"
	opGetRecipe   = "get recipe"

	maxErrorBody = 4 << 10
)

// PageRequest is the parameter set of one list request.
type PageRequest struct {
	Page           int
	PerPage        int
	IncludeDetails bool
}

// Fetcher loads recipe pages and single recipes.
type Fetcher interface {
	FetchPage(ctx context.Context, req PageRequest) (*recipe.Page, error)
	FetchDetail(ctx context.Context, id int64) (*recipe.Detail, error)
}

// Client is a Fetcher backed by net/http.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        logr.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero keeps the client default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http or https, got %q", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

type listResponse struct {
	Success    bool              `json:"success"`
	Data       []recipe.Summary  `json:"data"`
	Pagination recipe.Pagination `json:"pagination"`
	Error      string            `json:"error"`
}

type detailResponse struct {
	Success bool           `json:"success"`
	Data    *recipe.Detail `json:"data"`
	Error   string         `json:"error"`
}

// FetchPage issues GET /api/recipes for the given parameters.
func (c *Client) FetchPage(ctx context.Context, req PageRequest) (*recipe.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("per_page", strconv.Itoa(req.PerPage))
	q.Set("include_details", strconv.FormatBool(req.IncludeDetails))

	var body listResponse
	if err := c.get(ctx, opListRecipes, "/api/recipes", q, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, failure(opListRecipes, body.Error)
	}

	records := body.Data
	if records == nil {
		records = []recipe.Summary{}
	}
	return &recipe.Page{Records: records, Pagination: body.Pagination}, nil
}

// FetchDetail issues GET /api/recipes/{id}.
func (c *Client) FetchDetail(ctx context.Context, id int64) (*recipe.Detail, error) {
	var body detailResponse
	path := "/api/recipes/" + strconv.FormatInt(id, 10)
	if err := c.get(ctx, opGetRecipe, path, nil, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, failure(opGetRecipe, body.Error)
	}
	if body.Data == nil {
		return nil, &FetchError{Op: opGetRecipe, Kind: KindApplication, Reason: "response has no data"}
	}
	return body.Data, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	u := *c.baseURL
	u.Path += path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &FetchError{Op: op, Kind: KindTransport, Reason: "building request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.V(1).Info("request failed", "op", op, "url", u.String(), "error", err.Error())
		return &FetchError{Op: op, Kind: KindTransport, Reason: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.V(1).Info("request done", "op", op, "url", u.String(), "status", resp.StatusCode, "elapsed", time.Since(start).String())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &FetchError{Op: op, Kind: KindTransport, Status: resp.StatusCode, Reason: errorReason(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Op: op, Kind: KindTransport, Status: 0, Reason: "decoding response", Err: err}
	}
	return nil
}

func failure(op, reason string) *FetchError {
	if strings.TrimSpace(reason) == "" {
		reason = "request was not successful"
	}
	return &FetchError{Op: op, Kind: KindApplication, Reason: reason}
}

// errorReason extracts the "error" field of a JSON error body, if any.
func errorReason(raw []byte) string {
	var body struct {
		Error  string `json:"error"`
		Detail any    `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if s, ok := body.Detail.(string); ok {
			return s
		}
	}
	return ""
}
