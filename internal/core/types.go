package core

import "context"

// Video is the single stored record.
type Video struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Views int64  `json:"views"`
	Likes int64  `json:"likes"`
}

// CreateRequest is the input to create a video under a caller-chosen id.
type CreateRequest struct {
	Name  string `json:"name"`
	Views int64  `json:"views"`
	Likes int64  `json:"likes"`
}

// UpdateRequest carries the optional fields of a partial update.
// A nil field was not supplied.
type UpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Views *int64  `json:"views,omitempty"`
	Likes *int64  `json:"likes,omitempty"`
}

// Store abstracts persistence for video records.
type Store interface {
	// Get returns the record for id, or ErrNotFound.
	Get(ctx context.Context, id int64) (*Video, error)
	// List returns every record ordered by ascending id.
	List(ctx context.Context) ([]Video, error)
	// Insert adds a new record. Must fail with ErrConflict if the id is taken.
	Insert(ctx context.Context, v *Video) error
	// Update overwrites name, views and likes of an existing record, or returns ErrNotFound.
	Update(ctx context.Context, v *Video) error
	// Delete removes the record for id, or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
