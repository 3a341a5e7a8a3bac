package unsafeitems

import (
	"encoding/json"
	"net/http"
	"strings"

	"petmate/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// La tabla es de solo lectura pública dentro de la app: buscar no exige
// auth, agregar y vaciar sí.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/unsafe", searchHandler(svc))
	r.Post("/unsafe", addHandler(svc))
	r.Delete("/unsafe", clearHandler(svc))
}

type addItemRequest struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Risk     Risk     `json:"risk"`
	Why      string   `json:"why"`
}

type itemResponse struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Risk     Risk     `json:"risk"`
	Why      string   `json:"why"`
}

// searchHandler godoc
// @Summary Buscar elementos peligrosos
// @Description Busca por substring del nombre (case-insensitive). Sin query devuelve toda la tabla, ordenada por categoría y riesgo.
// @Tags unsafe
// @Produce json
// @Param q query string false "Substring del nombre"
// @Success 200 {array} itemResponse
// @Router /unsafe [get]
func searchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]itemResponse, 0, len(items))
		for _, i := range items {
			out = append(out, itemResponse(i))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func addHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		i, err := svc.Add(r.Context(), AddInput{
			Category: req.Category,
			Name:     req.Name,
			Risk:     req.Risk,
			Why:      req.Why,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
			} else {
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, itemResponse(i))
	}
}

// clearHandler godoc
// @Summary Vaciar la tabla de elementos peligrosos
// @Description Elimina todas las entradas, incluidas las sembradas por defecto. Pensado para el reset de datos.
// @Tags unsafe
// @Security BearerAuth
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Router /unsafe [delete]
func clearHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Clear(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
