package hospital

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"petmate/internal/domain/pets"
	"petmate/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc, petsSvc))
		ar.Get("/", listAppointmentsHandler(svc, petsSvc))
		ar.Delete("/{apptID}", deleteAppointmentHandler(svc, petsSvc))
	})
}

type createAppointmentRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"` // YYYY-MM-DD; vacío = hoy
	Time  string `json:"time"` // HH:MM; vacío = 10:00
	Place string `json:"place"`
	Notes string `json:"notes"`
}

type appointmentResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	Title     string    `json:"title"`
	At        time.Time `json:"at"`
	Place     string    `json:"place"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func ownPet(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service) (pets.Pet, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return pets.Pet{}, false
	}

	p, err := petsSvc.GetByID(r.Context(), chi.URLParam(r, "petID"))
	if err != nil || p.OwnerUserID != claims.UserID {
		http.Error(w, "pet not found", http.StatusNotFound)
		return pets.Pet{}, false
	}
	return p, true
}

func createAppointmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), p.ID, CreateInput{
			Title: req.Title,
			Date:  req.Date,
			Time:  req.Time,
			Place: req.Place,
			Notes: req.Notes,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
			} else {
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

func listAppointmentsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		var (
			items []Appointment
			err   error
		)
		if r.URL.Query().Get("upcoming") == "true" {
			items, err = svc.ListUpcoming(r.Context(), p.ID)
		} else {
			items, err = svc.ListByPet(r.Context(), p.ID)
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteAppointmentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "apptID"), p.ID); err != nil {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID,
		PetID:     a.PetID,
		Title:     a.Title,
		At:        a.At,
		Place:     a.Place,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
