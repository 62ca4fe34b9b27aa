package orders

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-care-booking/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes limita el payload; una orden ocupa unos pocos cientos de bytes.
const maxBodyBytes = 64 << 10

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api", func(ar chi.Router) {
		// El subrouter es dueño de todo /api/*: sus 404/405 también son JSON.
		ar.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
		})
		ar.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		})

		ar.Get("/test", testHandler())
		ar.Post("/orders", createOrderHandler(svc, log))
	})
}

type testResponse struct {
	Message string `json:"message"`
}

// testHandler godoc
// @Summary Liveness del API
// @Tags system
// @Produce json
// @Success 200 {object} testResponse
// @Router /api/test [get]
func testHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, testResponse{Message: "Backend is running"})
	}
}

// createOrderHandler godoc
// @Summary Crear orden de cuidado
// @Description Valida el payload, guarda la orden y envía un email al operador. Si el email falla la respuesta sigue siendo success. `estimatedCost` es informativo y se guarda tal cual.
// @Tags orders
// @Accept json
// @Produce json
// @Param payload body CreateOrderRequest true "Datos de la reserva; fechas YYYY-MM-DD o RFC3339"
// @Success 200 {object} CreateOrderResponse
// @Failure 400 {object} ErrorResponse "invalid json / validación"
// @Failure 500 {object} ErrorResponse "no se pudo guardar"
// @Router /api/orders [post]
func createOrderHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.FromContext(r.Context(), log)

		var req CreateOrderRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
			return
		}

		in, err := req.ToInput()
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}

		res, err := svc.Create(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			reqLog.Error("create order failed", map[string]any{"error": err})
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to create order"})
			return
		}

		// res.NotifyErr ya quedó logueado en el Service; no cambia la respuesta.
		writeJSON(w, http.StatusOK, CreateOrderResponse{
			Success: true,
			OrderID: res.Order.ID,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
