package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)

	// Delete borra solo el perfil. No hay cascade: los logs, schedules
	// y eventos de la mascota pueden quedar huérfanos y los lectores
	// deben tolerarlo.
	Delete(ctx context.Context, id string) error
}
