package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)

	// DeleteAll borra todas las cuentas (reset de la pestaña de datos).
	DeleteAll(ctx context.Context) error
}
