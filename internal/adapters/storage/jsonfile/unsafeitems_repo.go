package jsonfile

import (
	"context"
	"errors"

	"petmate/internal/domain/unsafeitems"
)

type unsafeItemRepo struct {
	s *Store
}

func NewUnsafeItemRepo(s *Store) unsafeitems.Repository {
	return &unsafeItemRepo{s: s}
}

func (r *unsafeItemRepo) Create(ctx context.Context, i unsafeitems.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if i.ID == "" {
		return errors.New("item id required")
	}
	r.s.doc.UnsafeItems = append(r.s.doc.UnsafeItems, toItemRecord(i))
	return r.s.save()
}

func (r *unsafeItemRepo) List(ctx context.Context) ([]unsafeitems.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]unsafeitems.Item, 0, len(r.s.doc.UnsafeItems))
	for _, rec := range r.s.doc.UnsafeItems {
		out = append(out, fromItemRecord(rec))
	}
	return out, nil
}

func (r *unsafeItemRepo) Clear(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.doc.UnsafeItems = nil
	return r.s.save()
}
