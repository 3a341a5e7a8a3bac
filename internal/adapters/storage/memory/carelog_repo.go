package memory

import (
	"context"
	"errors"
	"sync"

	"petmate/internal/domain/carelog"
)

type carelogRepo struct {
	mu      sync.RWMutex
	events  []carelog.Event
	weights []carelog.WeightRecord
}

func NewCarelogRepo() carelog.Repository {
	return &carelogRepo{
		events:  make([]carelog.Event, 0),
		weights: make([]carelog.WeightRecord, 0),
	}
}

func (r *carelogRepo) AppendEvent(ctx context.Context, e carelog.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	r.events = append(r.events, e)
	return nil
}

func (r *carelogRepo) ListEvents(ctx context.Context, petID string, kind carelog.Kind) ([]carelog.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]carelog.Event, 0)
	for _, e := range r.events {
		if e.PetID == petID && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *carelogRepo) AppendWeight(ctx context.Context, w carelog.WeightRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w.ID == "" {
		return errors.New("weight record id required")
	}
	r.weights = append(r.weights, w)
	return nil
}

func (r *carelogRepo) ListWeights(ctx context.Context, petID string) ([]carelog.WeightRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]carelog.WeightRecord, 0)
	for _, w := range r.weights {
		if w.PetID == petID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *carelogRepo) ClearEvents(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = r.events[:0]
	return nil
}
