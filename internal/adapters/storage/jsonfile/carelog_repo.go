package jsonfile

import (
	"context"
	"errors"

	"petmate/internal/domain/carelog"
)

type carelogRepo struct {
	s *Store
}

func NewCarelogRepo(s *Store) carelog.Repository {
	return &carelogRepo{s: s}
}

func (r *carelogRepo) AppendEvent(ctx context.Context, e carelog.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	r.s.doc.Events = append(r.s.doc.Events, toEventRecord(e))
	return r.s.save()
}

func (r *carelogRepo) ListEvents(ctx context.Context, petID string, kind carelog.Kind) ([]carelog.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]carelog.Event, 0)
	for _, rec := range r.s.doc.Events {
		if rec.PetID == petID && rec.Kind == string(kind) {
			out = append(out, fromEventRecord(rec))
		}
	}
	return out, nil
}

func (r *carelogRepo) AppendWeight(ctx context.Context, w carelog.WeightRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if w.ID == "" {
		return errors.New("weight record id required")
	}
	r.s.doc.Weights = append(r.s.doc.Weights, w)
	return r.s.save()
}

func (r *carelogRepo) ListWeights(ctx context.Context, petID string) ([]carelog.WeightRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]carelog.WeightRecord, 0)
	for _, w := range r.s.doc.Weights {
		if w.PetID == petID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *carelogRepo) ClearEvents(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.doc.Events = nil
	return r.s.save()
}
