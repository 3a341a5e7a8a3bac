package carelog

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
)

// PetWeightRefresher actualiza el peso cacheado del perfil de la mascota.
// Lo implementa el servicio de pets; se inyecta como interface para no
// acoplar los paquetes.
type PetWeightRefresher interface {
	RefreshWeight(ctx context.Context, petID string, weightKg float64) error
}

type Service struct {
	repo Repository
	pets PetWeightRefresher // puede ser nil (tests)
	clk  *clock.Clock
	now  func() time.Time
}

func NewService(repo Repository, pets PetWeightRefresher, clk *clock.Clock) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		clk:  clk,
		now:  time.Now,
	}
}

type RecordInput struct {
	Date   string // vacío => hoy en la zona de la app
	Amount int
	Memo   string
}

// RecordFeeding registra gramos de comida/snack para la mascota.
func (s *Service) RecordFeeding(ctx context.Context, petID string, in RecordInput) (Event, error) {
	return s.recordEvent(ctx, petID, KindFeeding, in)
}

// RecordWater registra mililitros de agua para la mascota.
func (s *Service) RecordWater(ctx context.Context, petID string, in RecordInput) (Event, error) {
	return s.recordEvent(ctx, petID, KindWater, in)
}

func (s *Service) recordEvent(ctx context.Context, petID string, kind Kind, in RecordInput) (Event, error) {
	if strings.TrimSpace(petID) == "" {
		return Event{}, ErrInvalidInput
	}
	if in.Amount <= 0 {
		return Event{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.clk.Today()
	} else if !clock.ValidDate(date) {
		return Event{}, ErrInvalidInput
	}

	e := Event{
		ID:         uuid.NewString(),
		PetID:      petID,
		Kind:       kind,
		Date:       date,
		Amount:     in.Amount,
		Memo:       strings.TrimSpace(in.Memo),
		RecordedAt: s.now(),
	}

	if err := s.repo.AppendEvent(ctx, e); err != nil {
		return Event{}, err
	}
	return e, nil
}

type RecordWeightInput struct {
	Date     string
	WeightKg float64
	Memo     string
}

// RecordWeight agrega una medición de peso y refresca el peso cacheado
// del perfil. El log es la historia autoritativa; el perfil solo cachea
// el último valor registrado.
func (s *Service) RecordWeight(ctx context.Context, petID string, in RecordWeightInput) (WeightRecord, error) {
	if strings.TrimSpace(petID) == "" {
		return WeightRecord{}, ErrInvalidInput
	}
	if in.WeightKg <= 0 {
		return WeightRecord{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = s.clk.Today()
	} else if !clock.ValidDate(date) {
		return WeightRecord{}, ErrInvalidInput
	}

	w := WeightRecord{
		ID:         uuid.NewString(),
		PetID:      petID,
		Date:       date,
		WeightKg:   in.WeightKg,
		Memo:       strings.TrimSpace(in.Memo),
		RecordedAt: s.now(),
	}

	if err := s.repo.AppendWeight(ctx, w); err != nil {
		return WeightRecord{}, err
	}

	if s.pets != nil {
		// best effort: si la mascota ya no existe (log huérfano), se ignora
		_ = s.pets.RefreshWeight(ctx, petID, in.WeightKg)
	}

	return w, nil
}

func (s *Service) ListEvents(ctx context.Context, petID string, kind Kind) ([]Event, error) {
	return s.repo.ListEvents(ctx, petID, kind)
}

// ListWeights devuelve la historia de peso ordenada por fecha ascendente;
// a igual fecha, por orden de registro.
func (s *Service) ListWeights(ctx context.Context, petID string) ([]WeightRecord, error) {
	ws, err := s.repo.ListWeights(ctx, petID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ws, func(i, j int) bool {
		if ws[i].Date != ws[j].Date {
			return ws[i].Date < ws[j].Date
		}
		return ws[i].RecordedAt.Before(ws[j].RecordedAt)
	})
	return ws, nil
}

// ClearEvents vacía los logs de comida y agua de todas las mascotas.
func (s *Service) ClearEvents(ctx context.Context) error {
	return s.repo.ClearEvents(ctx)
}
