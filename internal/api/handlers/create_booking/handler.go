package create_booking

import (
	"errors"
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/api/middleware"
	createBooking "github.com/Liandro13/method-passion-site/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDate           = "invalid date, expected YYYY-MM-DD"
	msgDateConflict          = "Date conflict with existing booking"
	msgAccommodationNotFound = "accommodation not found"
	msgForbidden             = "access denied"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	identity := middleware.GetIdentity(r.Context())

	result, err := h.useCase.Execute(r.Context(), identity, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDateConflict):
			h.logger.Warn("POST /bookings - Date conflict: accommodation_id=%d, %s to %s", req.AccommodationID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgDateConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid booking: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrAccommodationNotFound):
			h.logger.Warn("POST /bookings - Accommodation not found: accommodation_id=%d", req.AccommodationID)
			handlers.RespondNotFound(w, msgAccommodationNotFound)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: subject=%q, accommodation_id=%d", identity.Subject, req.AccommodationID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: accommodation_id=%d, error=%v", req.AccommodationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, accommodation_id=%d, status=%s",
		result.Booking.ID, result.Booking.AccommodationID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
