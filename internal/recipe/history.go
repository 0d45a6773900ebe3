package recipe

import (
	"context"
	"time"
)

// View is one entry of the recently-opened journal.
type View struct {
	RecipeID int64     `json:"recipe_id" yaml:"recipe_id"`
	Title    string    `json:"title" yaml:"title"`
	Cuisine  string    `json:"cuisine,omitempty" yaml:"cuisine,omitempty"`
	ViewedAt time.Time `json:"viewed_at" yaml:"viewed_at"`
}

// HistoryRepository records which recipes the user opened.
// It is a journal only; nothing reads it in place of a fetch.
type HistoryRepository interface {
	// RecordView appends an entry for the opened recipe.
	RecordView(ctx context.Context, r Summary, at time.Time) error

	// RecentViews returns the latest views, newest first, one per recipe.
	RecentViews(ctx context.Context, limit int) ([]View, error)

	// Close releases the underlying storage.
	Close() error
}

// Summary returns the minimal record for reopening v. It carries no details,
// so opening it always goes through the detail endpoint.
func (v View) Summary() Summary {
	return Summary{ID: v.RecipeID, Title: v.Title, Cuisine: v.Cuisine}
}
