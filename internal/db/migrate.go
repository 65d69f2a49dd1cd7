package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		short_id    TEXT NOT NULL,
		name        TEXT NOT NULL,
		start_date  TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','paused','done','archived')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_short_id ON projects(short_id)`,

	`CREATE TABLE IF NOT EXISTS features (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'planned'
		            CHECK(status IN ('planned','in_progress','done','blocked')),
		lane        TEXT NOT NULL DEFAULT '',
		start_at    TEXT NOT NULL,
		end_at      TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		CHECK(end_at >= start_at)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_features_project ON features(project_id)`,

	`CREATE TABLE IF NOT EXISTS dependencies (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		source_id   TEXT NOT NULL REFERENCES features(id) ON DELETE CASCADE,
		target_id   TEXT NOT NULL REFERENCES features(id) ON DELETE CASCADE,
		type        TEXT NOT NULL CHECK(type IN ('FS','SS','FF','SF')),
		color       TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0,
		CHECK(source_id <> target_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependencies_project ON dependencies(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_dependencies_source ON dependencies(source_id)`,
	`CREATE INDEX IF NOT EXISTS idx_dependencies_target ON dependencies(target_id)`,
}
