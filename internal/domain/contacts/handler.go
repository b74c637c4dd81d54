package contacts

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

	r.Route("/api/contacts", func(cr chi.Router) {
		cr.Post("/", createContactHandler(svc, v))
		cr.Get("/", listContactsHandler(svc))
	})
}

type createContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// createContactHandler godoc
// @Summary Enviar mensaje de contacto
// @Tags contacts
// @Accept json
// @Produce json
// @Param payload body createContactRequest true "Mensaje"
// @Success 201 {object} contactResponse
// @Failure 400 {object} validation.Errors "invalid json / validation failed"
// @Router /api/contacts [post]
func createContactHandler(svc *Service, v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createContactRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := v.Struct(req); err != nil {
			validation.WriteError(w, err)
			return
		}

		c, err := svc.Create(r.Context(), NewContact{
			Name:    req.Name,
			Phone:   req.Phone,
			Email:   req.Email,
			Message: req.Message,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toContactResponse(c))
	}
}

// listContactsHandler godoc
// @Summary Listar mensajes de contacto
// @Tags contacts
// @Produce json
// @Success 200 {array} contactResponse
// @Router /api/contacts [get]
func listContactsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]contactResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toContactResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toContactResponse(c Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
