package hospital

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByPet(ctx context.Context, petID string) ([]Appointment, error)
	Delete(ctx context.Context, id string) error
}
