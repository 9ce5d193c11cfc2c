package sqlite

import (
	"database/sql"
)

// applyMigrations creates the videos table if it does not exist yet.
// There is no versioning; the schema has a single shape.
func applyMigrations(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	return err
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS videos (
  id    INTEGER PRIMARY KEY,
  name  TEXT    NOT NULL,
  views INTEGER NOT NULL,
  likes INTEGER NOT NULL
);
`
