package hospital

import "time"

// Appointment es una cita veterinaria de una mascota.
type Appointment struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`

	Title string `json:"title"`

	// At es el instante de la cita, con zona. Se muestra siempre en la
	// zona de la app.
	At time.Time `json:"at"`

	Place string `json:"place"`
	Notes string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
