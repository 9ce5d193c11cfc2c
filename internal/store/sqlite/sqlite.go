package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"videoapi/internal/core"
)

// Store implements core.Store backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite DB at path and applies migrations.
// path may be ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases alive and serializes
	// writers, which SQLite does anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	_, _ = db.Exec("PRAGMA busy_timeout = 5000;")
	_, _ = db.Exec("PRAGMA journal_mode = WAL;")

	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying DB.
func (s *Store) Close() error { return s.db.Close() }

// Get returns the video with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*core.Video, error) {
	const q = `SELECT id, name, views, likes FROM videos WHERE id = ? LIMIT 1;`

	var v core.Video
	err := s.db.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Name, &v.Views, &v.Likes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List returns all videos ordered by id.
func (s *Store) List(ctx context.Context) ([]core.Video, error) {
	const q = `SELECT id, name, views, likes FROM videos ORDER BY id;`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []core.Video{}
	for rows.Next() {
		var v core.Video
		if err := rows.Scan(&v.ID, &v.Name, &v.Views, &v.Likes); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Insert adds a new video. Returns core.ErrConflict if the id already exists.
func (s *Store) Insert(ctx context.Context, v *core.Video) error {
	const q = `INSERT INTO videos(id, name, views, likes) VALUES (?, ?, ?, ?);`

	_, err := s.db.ExecContext(ctx, q, v.ID, v.Name, v.Views, v.Likes)
	if err != nil {
		if isConstraintViolation(err) {
			return core.ErrConflict
		}
		return err
	}
	return nil
}

// Update overwrites the mutable fields of an existing video.
func (s *Store) Update(ctx context.Context, v *core.Video) error {
	const q = `UPDATE videos SET name = ?, views = ?, likes = ? WHERE id = ?;`

	res, err := s.db.ExecContext(ctx, q, v.Name, v.Views, v.Likes, v.ID)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// Delete removes the video with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM videos WHERE id = ?;`

	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

// isConstraintViolation matches primary key and unique violations. The only
// constraint an insert can trip is the primary key, so the primary result
// code is enough whether or not extended codes are reported.
func isConstraintViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// Compile-time check: *Store implements core.Store.
var _ core.Store = (*Store)(nil)
