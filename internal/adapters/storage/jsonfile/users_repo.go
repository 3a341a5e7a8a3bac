package jsonfile

import (
	"context"
	"errors"

	"petmate/internal/domain/users"
)

type userRepo struct {
	s *Store
}

func NewUserRepo(s *Store) users.Repository {
	return &userRepo{s: s}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if u.ID == "" {
		return errors.New("user id required")
	}
	for _, rec := range r.s.doc.Users {
		if rec.Username == u.Username {
			return errors.New("username already exists")
		}
	}
	r.s.doc.Users[u.ID] = toUserRecord(u)
	return r.s.save()
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.doc.Users[id]
	if !ok {
		return users.User{}, ErrNotFound
	}
	return fromUserRecord(rec), nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rec := range r.s.doc.Users {
		if rec.Username == username {
			return fromUserRecord(rec), nil
		}
	}
	return users.User{}, ErrNotFound
}

func (r *userRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.doc.Users = make(map[string]userRecord)
	return r.s.save()
}
