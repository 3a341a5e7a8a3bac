package jsonfile

import (
	"context"
	"errors"

	"petmate/internal/domain/pets"
)

type petRepo struct {
	s *Store
}

func NewPetRepo(s *Store) pets.Repository {
	return &petRepo{s: s}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.s.doc.Pets[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.s.doc.Pets[p.ID] = toPetRecord(p)
	return r.s.save()
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.doc.Pets[p.ID]; !exists {
		return ErrNotFound
	}
	r.s.doc.Pets[p.ID] = toPetRecord(p)
	return r.s.save()
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.doc.Pets[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return fromPetRecord(rec), nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, rec := range r.s.doc.Pets {
		if rec.OwnerUserID == ownerUserID {
			out = append(out, fromPetRecord(rec))
		}
	}
	return out, nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.doc.Pets[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.doc.Pets, id)
	return r.s.save()
}
