package check_availability

import (
	"errors"
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	checkAvailability "github.com/Liandro13/method-passion-site/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgMissingAccommodation  = "accommodationId or accommodationName is required"
	msgAccommodationNotFound = "Invalid accommodation"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/check-availability (public)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /check-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /check-availability - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}
	if req.AccommodationID == 0 && req.Name() == "" {
		h.logger.Warn("POST /check-availability - Missing accommodation")
		handlers.RespondBadRequest(w, msgMissingAccommodation)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrAccommodationNotFound):
			h.logger.Warn("POST /check-availability - Accommodation not found: id=%d, name=%q", req.AccommodationID, req.Name())
			handlers.RespondNotFound(w, msgAccommodationNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /check-availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /check-availability - Failed to check availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /check-availability - Checked: accommodation_id=%d, available=%t, occupied=%d",
		result.AccommodationID, result.Available, len(result.BookedDates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
