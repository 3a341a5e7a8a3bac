package carelog

import "time"

// Kind distingue los dos logs de consumo diario.
type Kind string

const (
	KindFeeding Kind = "feeding" // cantidades en gramos
	KindWater   Kind = "water"   // cantidades en mililitros
)

// Event es una entrada de log de comida o agua. Append-only: nunca se
// edita, solo se inserta o se limpia en bloque.
type Event struct {
	ID    string
	PetID string
	Kind  Kind

	// Date es fecha civil YYYY-MM-DD en la zona de la app.
	// La agregación compara por igualdad de día, sin hora.
	Date   string
	Amount int
	Memo   string

	RecordedAt time.Time
}

// WeightRecord es una medición de peso. Se permiten varias por mascota
// y día; la agregación lo tolera y el perfil cachea la última registrada.
type WeightRecord struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`

	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
	Memo     string  `json:"memo"`

	RecordedAt time.Time `json:"recorded_at"`
}

// DatedTotal es un punto de una serie: total por fecha civil.
type DatedTotal struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}
