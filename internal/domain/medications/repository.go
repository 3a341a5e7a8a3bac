package medications

import "context"

type Repository interface {
	Create(ctx context.Context, s Schedule) error
	GetByID(ctx context.Context, id string) (Schedule, error)
	ListByPet(ctx context.Context, petID string) ([]Schedule, error)
	Delete(ctx context.Context, id string) error
}
