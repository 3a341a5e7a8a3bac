package jsonfile

import (
	"context"
	"errors"
	"sort"

	"petmate/internal/domain/medications"
)

type medicationRepo struct {
	s *Store
}

func NewMedicationRepo(s *Store) medications.Repository {
	return &medicationRepo{s: s}
}

func (r *medicationRepo) Create(ctx context.Context, sch medications.Schedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sch.ID == "" {
		return errors.New("schedule id required")
	}
	if _, exists := r.s.doc.Medications[sch.ID]; exists {
		return errors.New("schedule already exists")
	}
	r.s.doc.Medications[sch.ID] = toScheduleRecord(sch)
	return r.s.save()
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.doc.Medications[id]
	if !ok {
		return medications.Schedule{}, ErrNotFound
	}
	return fromScheduleRecord(rec), nil
}

func (r *medicationRepo) ListByPet(ctx context.Context, petID string) ([]medications.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]medications.Schedule, 0)
	for _, rec := range r.s.doc.Medications {
		if rec.PetID == petID {
			out = append(out, fromScheduleRecord(rec))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *medicationRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.doc.Medications[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.doc.Medications, id)
	return r.s.save()
}
