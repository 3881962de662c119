package list_bookings

import (
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/api/middleware"
)

const (
	msgInvalidParams = "invalid query parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: accommodation_id, status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(query.Get("accommodation_id"), query.Get("status"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), identity, serviceReq)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: subject=%q, error=%v", identity.Subject, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - %d bookings returned to %q", len(result.Bookings), identity.Subject)
	handlers.RespondJSON(w, http.StatusOK, result)
}
