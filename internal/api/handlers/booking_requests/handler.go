package booking_requests

import (
	"errors"
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/domain"
	createBooking "github.com/Liandro13/method-passion-site/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDate           = "invalid date, expected YYYY-MM-DD"
	msgDateConflict          = "Date conflict with existing booking"
	msgAccommodationNotFound = "accommodation not found"
	msgMissingAccommodation  = "accommodation_id or accommodation is required"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-requests (public)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /booking-requests - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}
	if !req.HasAccommodation() {
		h.logger.Warn("POST /booking-requests - Missing accommodation")
		handlers.RespondBadRequest(w, msgMissingAccommodation)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /booking-requests - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), domain.GuestIdentity(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDateConflict):
			h.logger.Warn("POST /booking-requests - Date conflict: %s to %s", req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgDateConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking-requests - Invalid request: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrAccommodationNotFound):
			h.logger.Warn("POST /booking-requests - Accommodation not found: id=%d, name=%q", req.AccommodationID, req.AccommodationName)
			handlers.RespondNotFound(w, msgAccommodationNotFound)

		default:
			h.logger.Error("POST /booking-requests - Failed to file request: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-requests - Request filed: booking_id=%d, accommodation_id=%d",
		result.Booking.ID, result.Booking.AccommodationID)
	handlers.RespondJSON(w, http.StatusCreated, BookingRequestResponse{
		Success: true,
		ID:      result.Booking.ID,
		Status:  string(result.Booking.Status),
	})
}
