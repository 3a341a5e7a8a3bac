package medications

import "time"

// Schedule es una pauta de medicación recurrente de una mascota.
// Invariante: al menos un horario y nombre de droga no vacío.
type Schedule struct {
	ID    string
	PetID string

	Drug string
	Dose string // texto libre, ej. "5"
	Unit string // texto libre, ej. "mg"

	// Times son horarios HH:MM. Se guardan ordenados para display;
	// el orden no afecta la expansión.
	Times []string

	// Start/End son fechas civiles YYYY-MM-DD, ambas inclusive.
	// End nil = pauta abierta (sin fecha de fin).
	Start string
	End   *string

	Notes string

	CreatedAt time.Time
}

// Occurrence es una toma concreta generada al expandir una pauta.
type Occurrence struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Drug      string `json:"drug"`
	DoseLabel string `json:"dose_label"` // dose+unit, ej. "5mg"
}
