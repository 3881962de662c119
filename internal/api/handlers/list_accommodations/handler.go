package list_accommodations

import (
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
)

type Handler struct {
	service AccommodationService
	logger  Logger
}

func NewHandler(service AccommodationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/accommodations
// Public endpoint, no authentication
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /accommodations - Failed to list accommodations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /accommodations - Accommodations retrieved: count=%d", len(result.Accommodations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
