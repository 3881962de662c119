package list_images

import (
	"net/http"
	"strconv"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
)

const (
	msgInvalidAccommodationID = "invalid accommodation_id"
)

type Handler struct {
	service ImageService
	logger  Logger
}

func NewHandler(service ImageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/images
// Query params: accommodation_id (optional). Public endpoint.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var accommodationID *int64
	if raw := r.URL.Query().Get("accommodation_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /images - Invalid accommodation_id: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidAccommodationID)
			return
		}
		accommodationID = &id
	}

	result, err := h.service.List(r.Context(), accommodationID)
	if err != nil {
		h.logger.Error("GET /images - Failed to list images: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /images - Images retrieved: count=%d", len(result.Images))
	handlers.RespondJSON(w, http.StatusOK, result)
}
