package unsafeitems

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// riskOrder ordena los niveles de menor a mayor para el display.
var riskOrder = map[Risk]int{
	RiskCaution:    0,
	RiskMediumHigh: 1,
	RiskHigh:       2,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type AddInput struct {
	Category Category
	Name     string
	Risk     Risk
	Why      string
}

func (s *Service) Add(ctx context.Context, in AddInput) (Item, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Item{}, ErrInvalidInput
	}
	switch in.Category {
	case CategoryFood, CategoryPlant, CategoryObject:
	default:
		return Item{}, ErrInvalidInput
	}
	switch in.Risk {
	case RiskCaution, RiskMediumHigh, RiskHigh:
	default:
		return Item{}, ErrInvalidInput
	}

	i := Item{
		ID:       uuid.NewString(),
		Category: in.Category,
		Name:     strings.TrimSpace(in.Name),
		Risk:     in.Risk,
		Why:      strings.TrimSpace(in.Why),
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return Item{}, err
	}
	return i, nil
}

// Search filtra por substring del nombre (case-insensitive). Query vacía
// devuelve todo. Orden: categoría, riesgo, nombre.
func (s *Service) Search(ctx context.Context, query string) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Item, 0, len(items))
	for _, i := range items {
		if q != "" && !strings.Contains(strings.ToLower(i.Name), q) {
			continue
		}
		out = append(out, i)
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Category != out[b].Category {
			return out[a].Category < out[b].Category
		}
		if out[a].Risk != out[b].Risk {
			return riskOrder[out[a].Risk] < riskOrder[out[b].Risk]
		}
		return out[a].Name < out[b].Name
	})

	return out, nil
}

func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
