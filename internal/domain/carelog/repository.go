package carelog

import "context"

type Repository interface {
	AppendEvent(ctx context.Context, e Event) error
	ListEvents(ctx context.Context, petID string, kind Kind) ([]Event, error)

	AppendWeight(ctx context.Context, w WeightRecord) error
	ListWeights(ctx context.Context, petID string) ([]WeightRecord, error)

	// ClearEvents vacía por completo los logs de comida y agua
	// (todas las mascotas), como el botón de reset del original.
	ClearEvents(ctx context.Context) error
}
