package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS recipe_views (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			recipe_id  INTEGER NOT NULL,
			title      TEXT NOT NULL,
			cuisine    TEXT NOT NULL DEFAULT '',
			viewed_at  INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_recipe_views_recipe ON recipe_views(recipe_id);
		CREATE INDEX IF NOT EXISTS idx_recipe_views_viewed ON recipe_views(viewed_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating recipe_views table: %w", err)
	}

	return nil
}
