// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/recetario/internal/recipe"
)

// DefaultRecentLimit is used when RecentViews is called with a non-positive limit.
const DefaultRecentLimit = 20

// SQLite implements recipe.HistoryRepository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ recipe.HistoryRepository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// RecordView appends an entry for a recipe the user opened.
func (s *SQLite) RecordView(ctx context.Context, r recipe.Summary, at time.Time) error {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return errors.New("recipe title is required")
	}

	query := `INSERT INTO recipe_views (recipe_id, title, cuisine, viewed_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, r.ID, title, r.Cuisine, at.UTC().UnixNano()); err != nil {
		return fmt.Errorf("inserting recipe view: %w", err)
	}
	return nil
}

// RecentViews returns the most recently opened recipes, newest first.
// A recipe opened several times appears once, with its latest view.
func (s *SQLite) RecentViews(ctx context.Context, limit int) ([]recipe.View, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	// SQLite fills bare columns from the row holding MAX(viewed_at).
	query := `
		SELECT recipe_id, title, cuisine, MAX(viewed_at) AS last_viewed
		FROM recipe_views
		GROUP BY recipe_id
		ORDER BY last_viewed DESC, recipe_id ASC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent views: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var views []recipe.View
	for rows.Next() {
		var (
			v        recipe.View
			viewedAt int64
		)
		if err := rows.Scan(&v.RecipeID, &v.Title, &v.Cuisine, &viewedAt); err != nil {
			return nil, fmt.Errorf("scanning recipe view: %w", err)
		}
		v.ViewedAt = time.Unix(0, viewedAt).Local()
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipe views: %w", err)
	}

	return views, nil
}

// ClearViews deletes the whole history and returns the number of removed entries.
func (s *SQLite) ClearViews(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM recipe_views`)
	if err != nil {
		return 0, fmt.Errorf("clearing recipe views: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return n, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
