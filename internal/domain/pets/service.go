package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"petmate/internal/platform/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	Breed     string
	BirthDate *string // YYYY-MM-DD
	WeightKg  float64
	Notes     string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.BirthDate != nil && !clock.ValidDate(*in.BirthDate) {
		return Pet{}, ErrInvalidInput
	}

	// peso negativo o ausente se normaliza a 0; las raciones
	// degeneran a 0 sin error
	weight := in.WeightKg
	if weight < 0 {
		weight = 0
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Breed:       strings.TrimSpace(in.Breed),
		BirthDate:   in.BirthDate,
		WeightKg:    weight,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// PatchDate distingue "no enviado" de "enviar null para limpiar".
type PatchDate struct {
	Present bool
	Value   *string
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string
	Species   *string
	Breed     *string
	BirthDate PatchDate
	WeightKg  *float64
	Notes     *string
}

func (s *Service) Update(ctx context.Context, petID, ownerUserID string, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, ErrNotFound
	}
	if p.OwnerUserID != ownerUserID {
		return Pet{}, ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.Species != nil {
		sp := strings.TrimSpace(*in.Species)
		if sp == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Species = sp
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.BirthDate.Present {
		if in.BirthDate.Value != nil && !clock.ValidDate(*in.BirthDate.Value) {
			return Pet{}, ErrInvalidInput
		}
		p.BirthDate = in.BirthDate.Value
	}
	if in.WeightKg != nil {
		w := *in.WeightKg
		if w < 0 {
			w = 0
		}
		p.WeightKg = w
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete borra el perfil. Sin cascade: los logs de la mascota quedan
// huérfanos a propósito (ver comportamiento del original).
func (s *Service) Delete(ctx context.Context, petID, ownerUserID string) error {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return ErrNotFound
	}
	if p.OwnerUserID != ownerUserID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, petID)
}

// RefreshWeight actualiza el peso cacheado del perfil. Lo llama el
// servicio de carelog cada vez que se registra un WeightRecord.
func (s *Service) RefreshWeight(ctx context.Context, petID string, weightKg float64) error {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		// log huérfano: no es error del caller
		return nil
	}
	if weightKg < 0 {
		weightKg = 0
	}
	p.WeightKg = weightKg
	p.UpdatedAt = s.now()
	return s.repo.Update(ctx, p)
}

// SetPhoto guarda la referencia a la foto de perfil ya almacenada.
func (s *Service) SetPhoto(ctx context.Context, petID, ownerUserID, photoPath string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, ErrNotFound
	}
	if p.OwnerUserID != ownerUserID {
		return Pet{}, ErrNotFound
	}
	p.PhotoPath = strings.TrimSpace(photoPath)
	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
