package memory

import (
	"context"
	"errors"
	"sync"

	"petmate/internal/domain/unsafeitems"
)

type unsafeItemRepo struct {
	mu    sync.RWMutex
	items []unsafeitems.Item
}

// NewUnsafeItemRepo crea el repo sembrado con las entradas default del
// original (chocolate, uvas/pasas).
func NewUnsafeItemRepo() unsafeitems.Repository {
	return &unsafeItemRepo{
		items: unsafeitems.Defaults(),
	}
}

func (r *unsafeItemRepo) Create(ctx context.Context, i unsafeitems.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i.ID == "" {
		return errors.New("item id required")
	}
	r.items = append(r.items, i)
	return nil
}

func (r *unsafeItemRepo) List(ctx context.Context) ([]unsafeitems.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]unsafeitems.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *unsafeItemRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	return nil
}
