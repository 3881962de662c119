package team_bookings

import (
	"net/http"
	"time"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/api/middleware"
	"github.com/Liandro13/method-passion-site/internal/domain"
)

type Handler struct {
	service BookingService
	logger  Logger
	now     func() time.Time
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/team/bookings
// Confirmed bookings in the caller's accommodations that have not checked out yet
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())

	result, err := h.service.ListUpcoming(r.Context(), identity, domain.DateOf(h.now()))
	if err != nil {
		h.logger.Error("GET /team/bookings - Failed to list bookings: subject=%q, error=%v", identity.Subject, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /team/bookings - Bookings retrieved: subject=%q, count=%d", identity.Subject, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
