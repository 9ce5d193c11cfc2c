package memory

import (
	"context"
	"sort"
	"sync"

	"videoapi/internal/core"
)

// Store is a process-local core.Store. It is used for tests and for
// DB_DRIVER=memory; nothing survives a restart.
type Store struct {
	mu     sync.RWMutex
	videos map[int64]core.Video
}

func New() *Store {
	return &Store{videos: make(map[int64]core.Video)}
}

func (s *Store) Get(_ context.Context, id int64) (*core.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &v, nil
}

func (s *Store) List(_ context.Context) ([]core.Video, error) {
	s.mu.RLock()
	out := make([]core.Video, 0, len(s.videos))
	for _, v := range s.videos {
		out = append(out, v)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) Insert(_ context.Context, v *core.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[v.ID]; ok {
		return core.ErrConflict
	}
	s.videos[v.ID] = *v
	return nil
}

func (s *Store) Update(_ context.Context, v *core.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[v.ID]; !ok {
		return core.ErrNotFound
	}
	s.videos[v.ID] = *v
	return nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.videos, id)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

var _ core.Store = (*Store)(nil)
