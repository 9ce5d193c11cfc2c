// Package storetest holds the behavior every core.Store must share.
package storetest

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"videoapi/internal/core"
)

// Run exercises s against the core.Store contract. s must start empty.
func Run(t *testing.T, s core.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("EmptyList", func(t *testing.T) {
		got, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty store, got %+v", got)
		}
	})

	t.Run("InsertGet", func(t *testing.T) {
		want := core.Video{ID: 10, Name: "intro", Views: 5, Likes: 1}
		if err := s.Insert(ctx, &want); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		got, err := s.Get(ctx, 10)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if *got != want {
			t.Fatalf("Get: got %+v want %+v", *got, want)
		}
	})

	t.Run("InsertConflict", func(t *testing.T) {
		dup := core.Video{ID: 10, Name: "other", Views: 9, Likes: 9}
		if err := s.Insert(ctx, &dup); !core.IsConflict(err) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		got, _ := s.Get(ctx, 10)
		if got == nil || got.Name != "intro" {
			t.Fatalf("conflicting insert changed record: %+v", got)
		}
	})

	t.Run("Update", func(t *testing.T) {
		upd := core.Video{ID: 10, Name: "renamed", Views: 6, Likes: 2}
		if err := s.Update(ctx, &upd); err != nil {
			t.Fatalf("Update: %v", err)
		}
		got, _ := s.Get(ctx, 10)
		if got == nil || *got != upd {
			t.Fatalf("after Update: %+v", got)
		}
		if err := s.Update(ctx, &core.Video{ID: 999, Name: "x"}); !core.IsNotFound(err) {
			t.Fatalf("Update missing: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListOrdered", func(t *testing.T) {
		for _, id := range []int64{30, 20} {
			if err := s.Insert(ctx, &core.Video{ID: id, Name: "v", Views: id, Likes: 0}); err != nil {
				t.Fatalf("Insert %d: %v", id, err)
			}
		}
		got, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 || got[0].ID != 10 || got[1].ID != 20 || got[2].ID != 30 {
			t.Fatalf("List: %+v", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := s.Delete(ctx, 20); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := s.Get(ctx, 20); !core.IsNotFound(err) {
			t.Fatalf("Get deleted: expected ErrNotFound, got %v", err)
		}
		if err := s.Delete(ctx, 20); !core.IsNotFound(err) {
			t.Fatalf("Delete twice: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ConcurrentInsertSameID", func(t *testing.T) {
		const workers = 8
		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				err := s.Insert(ctx, &core.Video{ID: 77, Name: "race", Views: int64(i), Likes: 0})
				switch {
				case err == nil:
					wins.Add(1)
				case !core.IsConflict(err):
					t.Errorf("Insert: %v", err)
				}
			}(i)
		}
		wg.Wait()
		if wins.Load() != 1 {
			t.Fatalf("expected exactly one insert to win, got %d", wins.Load())
		}
	})
}
