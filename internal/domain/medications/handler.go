package medications

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"petmate/internal/domain/pets"
	"petmate/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const defaultLookaheadDays = 7

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/medications", func(mr chi.Router) {
		mr.Post("/", createScheduleHandler(svc, petsSvc))
		mr.Get("/", listSchedulesHandler(svc, petsSvc))
		mr.Get("/upcoming", upcomingHandler(svc, petsSvc))
		mr.Delete("/{schedID}", deleteScheduleHandler(svc, petsSvc))
	})
}

type createScheduleRequest struct {
	Drug  string   `json:"drug"`
	Dose  string   `json:"dose"`
	Unit  string   `json:"unit"`
	Times []string `json:"times"` // HH:MM
	Start string   `json:"start"` // YYYY-MM-DD; vacío = hoy
	End   string   `json:"end"`   // vacío = abierta
	Notes string   `json:"notes"`
}

type scheduleResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	Drug      string    `json:"drug"`
	Dose      string    `json:"dose"`
	Unit      string    `json:"unit"`
	Times     []string  `json:"times"`
	Start     string    `json:"start"`
	End       *string   `json:"end,omitempty"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type occurrenceResponse struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Drug      string `json:"drug"`
	DoseLabel string `json:"dose_label"`
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

// createScheduleHandler godoc
// @Summary Crear pauta de medicación
// @Description Registra una pauta recurrente. Requiere drug y al menos un horario HH:MM; end vacío deja la pauta abierta.
// @Tags medications
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body createScheduleRequest true "Pauta de medicación"
// @Success 201 {object} scheduleResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/medications [post]
func createScheduleHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		var req createScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sched, err := svc.Create(r.Context(), p.ID, CreateInput{
			Drug:  req.Drug,
			Dose:  req.Dose,
			Unit:  req.Unit,
			Times: req.Times,
			Start: req.Start,
			End:   req.End,
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

		writeJSON(w, http.StatusCreated, toScheduleResponse(sched))
	}
}

func listSchedulesHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		items, err := svc.ListByPet(r.Context(), p.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]scheduleResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toScheduleResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// upcomingHandler godoc
// @Summary Próximas tomas
// @Description Expande las pautas de la mascota en tomas concretas para los próximos N días (default 7), ordenadas por fecha y hora.
// @Tags medications
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param days query int false "Días hacia adelante (default 7)"
// @Success 200 {array} occurrenceResponse
// @Router /pets/{petID}/medications/upcoming [get]
func upcomingHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		days := defaultLookaheadDays
		if v := r.URL.Query().Get("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "days must be a positive integer", http.StatusBadRequest)
				return
			}
			days = n
		}

		occs, err := svc.Upcoming(r.Context(), p.ID, days)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]occurrenceResponse, 0, len(occs))
		for _, o := range occs {
			out = append(out, occurrenceResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteScheduleHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "schedID"), p.ID); err != nil {
			http.Error(w, "schedule not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toScheduleResponse(s Schedule) scheduleResponse {
	return scheduleResponse{
		ID:        s.ID,
		PetID:     s.PetID,
		Drug:      s.Drug,
		Dose:      s.Dose,
		Unit:      s.Unit,
		Times:     s.Times,
		Start:     s.Start,
		End:       s.End,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
