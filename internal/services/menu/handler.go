package menu

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kapehan/internal/logger"
)

// Handler handles HTTP requests for the items API
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new menu handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Routes returns the router for the items API, mounted under /api/items.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListItems)
	r.Get("/category/{category}", h.ListByCategory)
	r.Get("/{id}", h.GetItem)
	return r
}

// ListItems handles GET /api/items
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())

	items, err := h.service.ListItems(r.Context(), requestID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetItem handles GET /api/items/{id}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())
	id := chi.URLParam(r, "id")

	item, err := h.service.GetItem(r.Context(), id, requestID)
	if err != nil {
		if err == ErrNotFound {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// ListByCategory handles GET /api/items/category/{category}
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFrom(r.Context())
	category := chi.URLParam(r, "category")

	items, err := h.service.ListItemsByCategory(r.Context(), category, requestID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
