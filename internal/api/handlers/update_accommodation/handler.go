package update_accommodation

import (
	"errors"
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/service/accommodations"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "accommodation not found"
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

// Handle PUT /api/v1/accommodations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateAccommodationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /accommodations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /accommodations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}
	accommodationID := req.ID

	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, accommodations.ErrAccommodationNotFound):
			h.logger.Warn("PUT /accommodations - Accommodation not found: accommodation_id=%d", accommodationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, accommodations.ErrInvalidInput):
			h.logger.Warn("PUT /accommodations - Invalid update: accommodation_id=%d, error=%v", accommodationID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /accommodations - Failed to update accommodation: accommodation_id=%d, error=%v", accommodationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /accommodations - Accommodation updated: accommodation_id=%d", accommodationID)
	handlers.RespondJSON(w, http.StatusOK, UpdateAccommodationResponse{Success: true, Accommodation: result})
}
