package create_blocked_date

import (
	"errors"
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/api/middleware"
	"github.com/Liandro13/method-passion-site/internal/service/blockeddates"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgAccommodationNotFound = "accommodation not found"
	msgForbidden             = "access denied"
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

// Handle POST /api/v1/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /blocked-dates - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	identity := middleware.GetIdentity(r.Context())

	result, err := h.service.Create(r.Context(), identity, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrInvalidInput):
			h.logger.Warn("POST /blocked-dates - Invalid range: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, blockeddates.ErrAccessDenied):
			h.logger.Warn("POST /blocked-dates - Access denied: subject=%q, accommodation_id=%d", identity.Subject, req.AccommodationID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockeddates.ErrAccommodationNotFound):
			h.logger.Warn("POST /blocked-dates - Accommodation not found: accommodation_id=%d", req.AccommodationID)
			handlers.RespondNotFound(w, msgAccommodationNotFound)

		default:
			h.logger.Error("POST /blocked-dates - Failed to block dates: accommodation_id=%d, error=%v", req.AccommodationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-dates - Dates blocked: id=%d, accommodation_id=%d, %s to %s",
		result.ID, result.AccommodationID, result.StartDate, result.EndDate)
	handlers.RespondJSON(w, http.StatusCreated, CreateBlockedDateResponse{
		Success:     true,
		ID:          result.ID,
		BlockedDate: result,
	})
}
