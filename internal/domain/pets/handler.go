package pets

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"petmate/internal/middleware"
	"petmate/internal/ports/photos"

	"github.com/go-chi/chi/v5"
)

const maxPhotoSize = 10 << 20 // 10 MB

func RegisterRoutes(r chi.Router, svc *Service, photoStore photos.Store) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		if photoStore != nil {
			pr.Post("/{petID}/photo", uploadPhotoHandler(svc, photoStore))
			pr.Get("/{petID}/photo", getPhotoHandler(svc, photoStore))
		}
	})
}

type createPetRequest struct {
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Breed     string  `json:"breed"`
	BirthDate string  `json:"birth_date"` // YYYY-MM-DD opcional
	WeightKg  float64 `json:"weight_kg"`
	Notes     string  `json:"notes"`
}

type petResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	BirthDate   *string   `json:"birth_date,omitempty"`
	WeightKg    float64   `json:"weight_kg"`
	Notes       string    `json:"notes"`
	HasPhoto    bool      `json:"has_photo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name     *string  `json:"name"`
	Species  *string  `json:"species"`
	Breed    *string  `json:"breed"`
	WeightKg *float64 `json:"weight_kg"`
	Notes    *string  `json:"notes"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea el perfil de una mascota para el usuario autenticado. Peso negativo se normaliza a 0.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos del perfil; birth_date en YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *string
		if s := strings.TrimSpace(req.BirthDate); s != "" {
			bd = &s
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			BirthDate: bd,
			WeightKg:  req.WeightKg,
			Notes:     req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil || p.OwnerUserID != claims.UserID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		petID := chi.URLParam(r, "petID")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}

		var req updatePetRequest
		if len(body) > 0 {
			if err := json.Unmarshal(body, &req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		// Detectar presencia de birth_date (para permitir null = limpiar)
		var raw map[string]json.RawMessage
		if len(body) > 0 {
			if err := json.Unmarshal(body, &raw); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}
		bd := PatchDate{}
		if v, exists := raw["birth_date"]; exists {
			bd.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "birth_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				bd.Value = &s
			}
		}

		updated, err := svc.Update(r.Context(), petID, claims.UserID, UpdateInput{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			BirthDate: bd,
			WeightKg:  req.WeightKg,
			Notes:     req.Notes,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), claims.UserID); err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// uploadPhotoHandler recibe multipart con campo "photo" (jpg/png).
func uploadPhotoHandler(svc *Service, store photos.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		petID := chi.URLParam(r, "petID")

		p, err := svc.GetByID(r.Context(), petID)
		if err != nil || p.OwnerUserID != claims.UserID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
			http.Error(w, "failed to parse form", http.StatusBadRequest)
			return
		}
		file, _, err := r.FormFile("photo")
		if err != nil {
			http.Error(w, "photo file required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		head := make([]byte, 512)
		n, _ := io.ReadFull(file, head)
		head = head[:n]

		mime := http.DetectContentType(head)
		if mime != "image/jpeg" && mime != "image/png" {
			http.Error(w, "photo must be jpg or png", http.StatusBadRequest)
			return
		}

		key, err := store.Save(r.Context(), petID, mime, io.MultiReader(strings.NewReader(string(head)), file))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		updated, err := svc.SetPhoto(r.Context(), petID, claims.UserID, key)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func getPhotoHandler(svc *Service, store photos.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil || p.OwnerUserID != claims.UserID {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		if strings.TrimSpace(p.PhotoPath) == "" {
			http.Error(w, "photo not found", http.StatusNotFound)
			return
		}

		rc, mime, err := store.Get(r.Context(), p.PhotoPath)
		if err != nil {
			http.Error(w, "photo not found", http.StatusNotFound)
			return
		}
		defer rc.Close()

		w.Header().Set("Content-Type", mime)
		w.WriteHeader(http.StatusOK)
		_, _ = io.Copy(w, rc)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		BirthDate:   p.BirthDate,
		WeightKg:    p.WeightKg,
		Notes:       p.Notes,
		HasPhoto:    p.PhotoPath != "",
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
