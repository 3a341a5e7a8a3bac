package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"petmate/internal/domain/hospital"
)

type hospitalRepo struct {
	mu   sync.RWMutex
	byID map[string]hospital.Appointment
}

func NewHospitalRepo() hospital.Repository {
	return &hospitalRepo{
		byID: make(map[string]hospital.Appointment),
	}
}

func (r *hospitalRepo) Create(ctx context.Context, a hospital.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *hospitalRepo) GetByID(ctx context.Context, id string) (hospital.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return hospital.Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *hospitalRepo) ListByPet(ctx context.Context, petID string) ([]hospital.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]hospital.Appointment, 0)
	for _, a := range r.byID {
		if a.PetID == petID {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})

	return out, nil
}

func (r *hospitalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
