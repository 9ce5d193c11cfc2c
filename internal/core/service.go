package core

import "context"

// Service implements the video CRUD operations on top of a Store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the video stored under id.
func (s *Service) Get(ctx context.Context, id int64) (*Video, error) {
	if id < 0 {
		return nil, ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// List returns all videos. The result is never nil.
func (s *Service) List(ctx context.Context) ([]Video, error) {
	videos, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []Video{}
	}
	return videos, nil
}

// Create stores a new video under a caller-chosen id.
// The existence check gives the common case a clean ErrConflict; the store's
// insert-if-absent catches the racing case.
func (s *Service) Create(ctx context.Context, id int64, in CreateRequest) (*Video, error) {
	if id < 0 {
		return nil, ErrNotFound
	}
	if err := validateName(in.Name); err != nil {
		return nil, err
	}

	_, err := s.store.Get(ctx, id)
	switch {
	case err == nil:
		return nil, ErrConflict
	case !IsNotFound(err):
		return nil, err
	}

	rec := &Video{
		ID:    id,
		Name:  in.Name,
		Views: in.Views,
		Likes: in.Likes,
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update applies a partial update. Fields that are absent or hold their zero
// value ("" or 0) are left unchanged; callers cannot reset views or likes to 0.
// The read and the write are not isolated, so concurrent updates to one id
// are last-writer-wins.
func (s *Service) Update(ctx context.Context, id int64, in UpdateRequest) (*Video, error) {
	if id < 0 {
		return nil, ErrNotFound
	}
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		rec.Name = *in.Name
	}
	if in.Views != nil && *in.Views != 0 {
		rec.Views = *in.Views
	}
	if in.Likes != nil && *in.Likes != 0 {
		rec.Likes = *in.Likes
	}

	if err := s.store.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the video stored under id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id < 0 {
		return ErrNotFound
	}
	return s.store.Delete(ctx, id)
}

// validateName rejects only the empty string; whitespace is a valid name.
func validateName(name string) error {
	if name == "" {
		return &FieldError{Field: "name", Msg: "Name of the video is required"}
	}
	return nil
}
