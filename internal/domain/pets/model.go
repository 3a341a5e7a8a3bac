package pets

import "time"

// Species define las especies soportadas.
// La lógica de raciones solo distingue perro vs. no-perro.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Pet representa el perfil de una mascota registrada.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species string // dog, cat, other (se acepta texto libre, ej. "개")
	Breed   string // opcional, texto libre

	// BirthDate es fecha civil YYYY-MM-DD; nil = no informada.
	BirthDate *string

	// WeightKg es un cache del último WeightRecord registrado.
	// La historia autoritativa vive en el log de pesos.
	WeightKg float64

	Notes     string
	PhotoPath string

	CreatedAt time.Time
	UpdatedAt time.Time
}
