package unsafeitems

import "context"

type Repository interface {
	Create(ctx context.Context, i Item) error
	List(ctx context.Context) ([]Item, error)

	// Clear vacía la tabla (reset de la pestaña de datos del original).
	Clear(ctx context.Context) error
}
