package list_blocked_dates

import (
	"net/http"
	"strconv"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/api/middleware"
	"github.com/Liandro13/method-passion-site/internal/service/blockeddates/models"
)

const (
	msgInvalidAccommodationID = "invalid accommodation_id"
)

type Handler struct {
	service BlockedDateService
	logger  Logger
}

func NewHandler(service BlockedDateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/blocked-dates
// Query params: accommodation_id (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBlockedDatesRequest{}
	if raw := r.URL.Query().Get("accommodation_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /blocked-dates - Invalid accommodation_id: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidAccommodationID)
			return
		}
		req.AccommodationID = &id
	}

	identity := middleware.GetIdentity(r.Context())

	result, err := h.service.List(r.Context(), identity, req)
	if err != nil {
		h.logger.Error("GET /blocked-dates - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocked-dates - Blocked dates retrieved: subject=%q, count=%d", identity.Subject, len(result.BlockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
