package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"petmate/internal/domain/medications"
)

type medicationRepo struct {
	mu   sync.RWMutex
	byID map[string]medications.Schedule
}

func NewMedicationRepo() medications.Repository {
	return &medicationRepo{
		byID: make(map[string]medications.Schedule),
	}
}

func (r *medicationRepo) Create(ctx context.Context, s medications.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		return errors.New("schedule id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("schedule already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return medications.Schedule{}, ErrNotFound
	}
	return s, nil
}

func (r *medicationRepo) ListByPet(ctx context.Context, petID string) ([]medications.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medications.Schedule, 0)
	for _, s := range r.byID {
		if s.PetID == petID {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *medicationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
