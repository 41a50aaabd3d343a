package orders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"kapehan/internal/logger"
	"kapehan/internal/models"
)

// Handler handles HTTP requests for the orders API
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new orders handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Routes returns the router for the orders API, mounted under /api/orders.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/dine-in", h.CreateDineIn)
	r.Get("/dine-in/list", h.ListDineIn)
	r.Get("/dine-in/{id}", h.GetDineIn)
	r.Patch("/dine-in/{id}/status", h.UpdateDineInStatus)

	r.Post("/delivery", h.CreateDelivery)
	r.Get("/delivery/list", h.ListDelivery)
	r.Get("/delivery/{id}", h.GetDelivery)
	r.Patch("/delivery/{id}/status", h.UpdateDeliveryStatus)

	return r
}

// CreateDineIn handles POST /api/orders/dine-in
func (h *Handler) CreateDineIn(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())

	var req models.CreateDineInOrderRequest
	if !h.decodeBody(w, r, requestID, &req) {
		return
	}

	summary, err := h.service.CreateDineIn(r.Context(), &req, requestID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusCreated, models.OrderResponse{
		Success: true,
		Message: "Dine-in order created successfully",
		Order:   summary,
	})
}

// CreateDelivery handles POST /api/orders/delivery
func (h *Handler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())

	var req models.CreateDeliveryOrderRequest
	if !h.decodeBody(w, r, requestID, &req) {
		return
	}

	summary, err := h.service.CreateDelivery(r.Context(), &req, requestID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusCreated, models.OrderResponse{
		Success: true,
		Message: "Delivery order created successfully",
		Order:   summary,
	})
}

// ListDineIn handles GET /api/orders/dine-in/list
func (h *Handler) ListDineIn(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())

	orders, err := h.service.ListDineIn(r.Context(), requestID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// ListDelivery handles GET /api/orders/delivery/list
func (h *Handler) ListDelivery(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())

	orders, err := h.service.ListDelivery(r.Context(), requestID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetDineIn handles GET /api/orders/dine-in/{id}
func (h *Handler) GetDineIn(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	order, err := h.service.GetDineIn(r.Context(), id, requestID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// GetDelivery handles GET /api/orders/delivery/{id}
func (h *Handler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	order, err := h.service.GetDelivery(r.Context(), id, requestID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateDineInStatus handles PATCH /api/orders/dine-in/{id}/status
func (h *Handler) UpdateDineInStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, models.DineIn)
}

// UpdateDeliveryStatus handles PATCH /api/orders/delivery/{id}/status
func (h *Handler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, models.Delivery)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request, kind models.OrderType) {
	requestID := logger.RequestIDFrom(r.Context())

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	if !h.decodeBody(w, r, requestID, &body) {
		return
	}
	if body.Status == "" {
		writeError(w, http.StatusBadRequest, "Status is required")
		return
	}

	summary, err := h.service.UpdateStatus(r.Context(), kind, id, body.Status, requestID)
	if err != nil {
		h.writeServiceError(w, err, requestID)
		return
	}

	writeJSON(w, http.StatusOK, models.OrderResponse{
		Success: true,
		Message: "Order status updated successfully",
		Order:   summary,
	})
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, requestID string, dst interface{}) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		h.logger.Error("validation_failed", requestID, "Failed to parse request body", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON format")
		return false
	}
	return true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error, requestID string) {
	var verr models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
