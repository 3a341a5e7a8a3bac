package jsonfile

import (
	"context"
	"errors"
	"sort"

	"petmate/internal/domain/hospital"
)

type hospitalRepo struct {
	s *Store
}

func NewHospitalRepo(s *Store) hospital.Repository {
	return &hospitalRepo{s: s}
}

func (r *hospitalRepo) Create(ctx context.Context, a hospital.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a.ID == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.s.doc.Appointments[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	r.s.doc.Appointments[a.ID] = a
	return r.s.save()
}

func (r *hospitalRepo) GetByID(ctx context.Context, id string) (hospital.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.doc.Appointments[id]
	if !ok {
		return hospital.Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *hospitalRepo) ListByPet(ctx context.Context, petID string) ([]hospital.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]hospital.Appointment, 0)
	for _, a := range r.s.doc.Appointments {
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
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.doc.Appointments[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.doc.Appointments, id)
	return r.s.save()
}
