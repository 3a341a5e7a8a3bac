package hospital

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"petmate/internal/platform/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")
)

type Service struct {
	repo Repository
	clk  *clock.Clock
	now  func() time.Time
}

func NewService(repo Repository, clk *clock.Clock) *Service {
	return &Service{
		repo: repo,
		clk:  clk,
		now:  time.Now,
	}
}

type CreateInput struct {
	Title string
	Date  string // YYYY-MM-DD; vacío = hoy
	Time  string // HH:MM; vacío = 10:00, como el default del original
	Place string
	Notes string
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (Appointment, error) {
	if strings.TrimSpace(petID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" {
		return Appointment{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.clk.Today()
	}
	hm := strings.TrimSpace(in.Time)
	if hm == "" {
		hm = "10:00"
	}

	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hm, s.clk.Location())
	if err != nil {
		return Appointment{}, ErrInvalidInput
	}

	a := Appointment{
		ID:        uuid.NewString(),
		PetID:     petID,
		Title:     strings.TrimSpace(in.Title),
		At:        at,
		Place:     strings.TrimSpace(in.Place),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// ListByPet devuelve todas las citas de la mascota ordenadas por instante
// ascendente, como la vista "다가오는 일정" del original.
func (s *Service) ListByPet(ctx context.Context, petID string) ([]Appointment, error) {
	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].At.Before(items[j].At)
	})
	return items, nil
}

// ListUpcoming filtra las citas que aún no pasaron.
func (s *Service) ListUpcoming(ctx context.Context, petID string) ([]Appointment, error) {
	items, err := s.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	now := s.clk.Now()
	out := make([]Appointment, 0, len(items))
	for _, a := range items {
		if a.At.Before(now) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id, petID string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if a.PetID != petID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
