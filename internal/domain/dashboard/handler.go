package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"petmate/internal/domain/pets"
	"petmate/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Ventanas de comparación permitidas, como el selector 7일/14일/30일.
var allowedWindows = map[int]struct{}{7: {}, 14: {}, 30: {}}

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Get("/pets/{petID}/dashboard", todayHandler(svc, petsSvc))
	r.Get("/pets/{petID}/trends", trendsHandler(svc, petsSvc))
	r.Get("/me/pets/compare", compareHandler(svc))
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

func windowDays(r *http.Request) (int, bool) {
	v := r.URL.Query().Get("days")
	if v == "" {
		return 7, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	if _, ok := allowedWindows[n]; !ok {
		return 0, false
	}
	return n, true
}

// todayHandler godoc
// @Summary Resumen del día
// @Description Raciones recomendadas según especie y peso, consumo de hoy y adherencia (acotada a 1.0). Peso 0 degenera a recomendaciones 0 sin error.
// @Tags dashboard
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} TodaySummary
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/dashboard [get]
func todayHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		sum, err := svc.Today(r.Context(), p)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

// trendsHandler godoc
// @Summary Tendencias de salud
// @Description Series de comida y agua sobre los últimos 7/14/30 días (huecos en 0), historia de peso, tomas de los próximos 7 días y citas futuras.
// @Tags dashboard
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param days query int false "Ventana: 7, 14 o 30 (default 7)"
// @Success 200 {object} Trends
// @Failure 400 {string} string "days must be 7, 14 or 30"
// @Router /pets/{petID}/trends [get]
func trendsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := ownPet(w, r, petsSvc)
		if !ok {
			return
		}

		days, ok := windowDays(r)
		if !ok {
			http.Error(w, "days must be 7, 14 or 30", http.StatusBadRequest)
			return
		}

		tr, err := svc.Trends(r.Context(), p, days)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, tr)
	}
}

type compareResponse struct {
	Window []string    `json:"window"`
	Pets   []PetSeries `json:"pets"`
}

func compareHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petIDs := r.URL.Query()["pet_id"]
		if len(petIDs) == 0 {
			http.Error(w, "at least one pet_id is required", http.StatusBadRequest)
			return
		}

		days, ok := windowDays(r)
		if !ok {
			http.Error(w, "days must be 7, 14 or 30", http.StatusBadRequest)
			return
		}

		series, window, err := svc.Compare(r.Context(), claims.UserID, petIDs, days)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, compareResponse{Window: window, Pets: series})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
