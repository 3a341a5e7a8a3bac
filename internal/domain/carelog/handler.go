package carelog

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
	r.Route("/pets/{petID}/feedings", func(fr chi.Router) {
		fr.Post("/", recordEventHandler(svc, petsSvc, KindFeeding))
		fr.Get("/", listEventsHandler(svc, petsSvc, KindFeeding))
	})
	r.Route("/pets/{petID}/waterings", func(wr chi.Router) {
		wr.Post("/", recordEventHandler(svc, petsSvc, KindWater))
		wr.Get("/", listEventsHandler(svc, petsSvc, KindWater))
	})
	r.Route("/pets/{petID}/weights", func(wr chi.Router) {
		wr.Post("/", recordWeightHandler(svc, petsSvc))
		wr.Get("/", listWeightsHandler(svc, petsSvc))
	})

	// Reset global de logs de comida/agua (pestaña de datos del original)
	r.Delete("/logs", clearLogsHandler(svc))
}

type recordEventRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD; vacío = hoy
	Amount int    `json:"amount"`
	Memo   string `json:"memo"`
}

type eventResponse struct {
	ID         string    `json:"id"`
	PetID      string    `json:"pet_id"`
	Kind       Kind      `json:"kind"`
	Date       string    `json:"date"`
	Amount     int       `json:"amount"`
	Memo       string    `json:"memo"`
	RecordedAt time.Time `json:"recorded_at"`
}

type recordWeightRequest struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
	Memo     string  `json:"memo"`
}

type weightResponse struct {
	ID         string    `json:"id"`
	PetID      string    `json:"pet_id"`
	Date       string    `json:"date"`
	WeightKg   float64   `json:"weight_kg"`
	Memo       string    `json:"memo"`
	RecordedAt time.Time `json:"recorded_at"`
}

// ownPet resuelve la mascota y corta con 401/404 si no es del usuario.
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

// recordEventHandler godoc
// @Summary Registrar comida o agua
// @Description Agrega una entrada al log diario de la mascota. amount en gramos (feedings) o mililitros (waterings); date vacío usa hoy en la zona de la app.
// @Tags carelog
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body recordEventRequest true "Entrada del log"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/feedings [post]
func recordEventHandler(svc *Service, petsSvc *pets.Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		var req recordEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := RecordInput{Date: req.Date, Amount: req.Amount, Memo: req.Memo}

		var (
			e   Event
			err error
		)
		if kind == KindFeeding {
			e, err = svc.RecordFeeding(r.Context(), p.ID, in)
		} else {
			e, err = svc.RecordWater(r.Context(), p.ID, in)
		}
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
			} else {
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toEventResponse(e))
	}
}

func listEventsHandler(svc *Service, petsSvc *pets.Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListEvents(r.Context(), p.ID, kind)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func recordWeightHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		var req recordWeightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.RecordWeight(r.Context(), p.ID, RecordWeightInput{
			Date:     req.Date,
			WeightKg: req.WeightKg,
			Memo:     req.Memo,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
			} else {
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toWeightResponse(rec))
	}
}

func listWeightsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListWeights(r.Context(), p.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]weightResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toWeightResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func clearLogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.ClearEvents(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:         e.ID,
		PetID:      e.PetID,
		Kind:       e.Kind,
		Date:       e.Date,
		Amount:     e.Amount,
		Memo:       e.Memo,
		RecordedAt: e.RecordedAt,
	}
}

func toWeightResponse(rec WeightRecord) weightResponse {
	return weightResponse{
		ID:         rec.ID,
		PetID:      rec.PetID,
		Date:       rec.Date,
		WeightKg:   rec.WeightKg,
		Memo:       rec.Memo,
		RecordedAt: rec.RecordedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
