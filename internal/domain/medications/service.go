package medications

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"petmate/internal/platform/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("schedule not found")
)

var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

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
	Drug  string
	Dose  string
	Unit  string
	Times []string // HH:MM
	Start string   // vacío = hoy
	End   string   // vacío = abierta
	Notes string
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (Schedule, error) {
	if strings.TrimSpace(petID) == "" {
		return Schedule{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Drug) == "" {
		return Schedule{}, ErrInvalidInput
	}

	times := normalizeTimes(in.Times)
	if len(times) == 0 {
		return Schedule{}, ErrInvalidInput
	}

	start := strings.TrimSpace(in.Start)
	if start == "" {
		start = s.clk.Today()
	} else if !clock.ValidDate(start) {
		return Schedule{}, ErrInvalidInput
	}

	var end *string
	if e := strings.TrimSpace(in.End); e != "" {
		if !clock.ValidDate(e) || e < start {
			return Schedule{}, ErrInvalidInput
		}
		end = &e
	}

	sched := Schedule{
		ID:        uuid.NewString(),
		PetID:     petID,
		Drug:      strings.TrimSpace(in.Drug),
		Dose:      strings.TrimSpace(in.Dose),
		Unit:      strings.TrimSpace(in.Unit),
		Times:     times,
		Start:     start,
		End:       end,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, sched); err != nil {
		return Schedule{}, err
	}
	return sched, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Schedule, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) Delete(ctx context.Context, id, petID string) error {
	sched, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	if sched.PetID != petID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Upcoming expande las pautas de la mascota para los próximos days días
// empezando hoy.
func (s *Service) Upcoming(ctx context.Context, petID string, days int) ([]Occurrence, error) {
	schedules, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}
	return ExpandOccurrences(schedules, petID, s.clk.Today(), days), nil
}

// normalizeTimes limpia, valida y ordena los horarios; descarta vacíos y
// duplicados. Horario mal formado invalida todo el input.
func normalizeTimes(raw []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !timeRe.MatchString(t) {
			return nil
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
