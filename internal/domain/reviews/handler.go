package reviews

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dogwalking/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// maxRequestBody acota el JSON de entrada (1 MiB).
const maxRequestBody = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	v := validation.New()

	r.Route("/api/reviews", func(rr chi.Router) {
		rr.Post("/", createReviewHandler(svc, v))
		rr.Get("/", listReviewsHandler(svc))
	})
}

type createReviewRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	PetName      string `json:"petName" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment" validate:"required"`
}

type reviewResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	PetName      string    `json:"petName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

// createReviewHandler godoc
// @Summary Publicar reseña
// @Tags reviews
// @Accept json
// @Produce json
// @Param payload body createReviewRequest true "Reseña; rating entre 1 y 5"
// @Success 201 {object} reviewResponse
// @Failure 400 {object} validation.Errors "invalid json / validation failed"
// @Router /api/reviews [post]
func createReviewHandler(svc *Service, v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReviewRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := v.Struct(req); err != nil {
			validation.WriteError(w, err)
			return
		}

		rv, err := svc.Create(r.Context(), NewReview{
			CustomerName: req.CustomerName,
			PetName:      req.PetName,
			Rating:       req.Rating,
			Comment:      req.Comment,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toReviewResponse(rv))
	}
}

// listReviewsHandler godoc
// @Summary Listar reseñas
// @Description La más reciente primero. Lista vacía si no hay reseñas.
// @Tags reviews
// @Produce json
// @Success 200 {array} reviewResponse
// @Router /api/reviews [get]
func listReviewsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reviewResponse, 0, len(items))
		for _, rv := range items {
			out = append(out, toReviewResponse(rv))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toReviewResponse(rv Review) reviewResponse {
	return reviewResponse{
		ID:           rv.ID,
		CustomerName: rv.CustomerName,
		PetName:      rv.PetName,
		Rating:       rv.Rating,
		Comment:      rv.Comment,
		CreatedAt:    rv.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
