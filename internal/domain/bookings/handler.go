package bookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dogwalking/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

// maxRequestBody acota el JSON de entrada (1 MiB).
const maxRequestBody = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	v := newValidator()

	r.Route("/api/bookings", func(br chi.Router) {
		br.Post("/", createBookingHandler(svc, v))
		br.Get("/", listBookingsHandler(svc))
		br.Get("/{bookingID}", getBookingHandler(svc))
	})

	r.Get("/api/services", listPlansHandler())
}

// newValidator registra "plan" (sigue al catálogo). Si el registro falla, falla al armar rutas.
func newValidator() *validation.Validator {
	v := validation.New()
	if err := v.RegisterString("plan", func(s string) bool { return ServiceType(s).Valid() }); err != nil {
		panic(err)
	}
	return v
}

// createBookingRequest es el formulario de reserva. Los nombres siguen al frontend (camelCase).
type createBookingRequest struct {
	OwnerName     string `json:"ownerName" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	DogName       string `json:"dogName" validate:"required"`
	DogBreed      string `json:"dogBreed"` // opcional
	ServiceType   string `json:"serviceType" validate:"required,plan" enums:"30min-single,1hour-single,30min-monthly,1hour-monthly"`
	PreferredDate string `json:"preferredDate" validate:"required"`
	Instructions  string `json:"instructions"` // opcional
}

// bookingResponse es la reserva guardada. Los opcionales vacíos salen como null.
type bookingResponse struct {
	ID            int64     `json:"id"`
	OwnerName     string    `json:"ownerName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	DogName       string    `json:"dogName"`
	DogBreed      *string   `json:"dogBreed"`
	ServiceType   string    `json:"serviceType"`
	PreferredDate string    `json:"preferredDate"`
	Instructions  *string   `json:"instructions"`
	CreatedAt     time.Time `json:"createdAt"`
}

type planResponse struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	PriceZAR int    `json:"priceZar"`
	Monthly  bool   `json:"monthly"`
}

// createBookingHandler godoc
// @Summary Crear solicitud de reserva
// @Description Guarda una solicitud de paseo. El id y createdAt los asigna el servidor.
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body createBookingRequest true "Datos de la reserva"
// @Success 201 {object} bookingResponse
// @Failure 400 {object} validation.Errors "invalid json / validation failed"
// @Router /api/bookings [post]
func createBookingHandler(svc *Service, v *validation.Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBookingRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if err := v.Struct(req); err != nil {
			validation.WriteError(w, err)
			return
		}

		b, err := svc.Create(r.Context(), NewBooking{
			OwnerName:     req.OwnerName,
			Phone:         req.Phone,
			Email:         req.Email,
			DogName:       req.DogName,
			DogBreed:      req.DogBreed,
			ServiceType:   ServiceType(req.ServiceType),
			PreferredDate: req.PreferredDate,
			Instructions:  req.Instructions,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toBookingResponse(b))
	}
}

// listBookingsHandler godoc
// @Summary Listar reservas
// @Description Todas las reservas, la más reciente primero.
// @Tags bookings
// @Produce json
// @Success 200 {array} bookingResponse
// @Router /api/bookings [get]
func listBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]bookingResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBookingResponse(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getBookingHandler godoc
// @Summary Obtener una reserva
// @Tags bookings
// @Produce json
// @Param bookingID path int true "ID de la reserva"
// @Success 200 {object} bookingResponse
// @Failure 400 {string} string "invalid booking id"
// @Failure 404 {string} string "booking not found"
// @Router /api/bookings/{bookingID} [get]
func getBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "invalid booking id", http.StatusBadRequest)
			return
		}

		b, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "booking not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toBookingResponse(b))
	}
}

// listPlansHandler godoc
// @Summary Catálogo de planes
// @Tags bookings
// @Produce json
// @Success 200 {array} planResponse
// @Router /api/services [get]
func listPlansHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		plans := Plans()
		out := make([]planResponse, 0, len(plans))
		for _, p := range plans {
			out = append(out, planResponse{
				Code:     string(p.Code),
				Label:    p.Label,
				PriceZAR: p.PriceZAR,
				Monthly:  p.Monthly,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toBookingResponse(b Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		OwnerName:     b.OwnerName,
		Phone:         b.Phone,
		Email:         b.Email,
		DogName:       b.DogName,
		DogBreed:      optional(b.DogBreed),
		ServiceType:   string(b.ServiceType),
		PreferredDate: b.PreferredDate,
		Instructions:  optional(b.Instructions),
		CreatedAt:     b.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// writeJSON se repite en cada módulo a propósito; ver reviews/contacts.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
