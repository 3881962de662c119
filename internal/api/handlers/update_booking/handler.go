package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/api/middleware"
	updateBooking "github.com/Liandro13/method-passion-site/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID      = "invalid booking id"
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDate           = "invalid date, expected YYYY-MM-DD"
	msgNotFound              = "booking not found"
	msgAccommodationNotFound = "accommodation not found"
	msgForbidden             = "access denied"
	msgDateConflict          = "Date conflict with existing booking"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Validation failed: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Rejected patch: booking_id=%d, error=%v", bookingID, err)
		if errors.Is(err, ErrDerivedField) {
			handlers.RespondBadRequest(w, err.Error())
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	identity := middleware.GetIdentity(r.Context())

	result, err := h.useCase.Execute(r.Context(), identity, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid update: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrAccommodationNotFound):
			h.logger.Warn("PUT /bookings/{id} - Accommodation not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgAccommodationNotFound)

		case errors.Is(err, updateBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, subject=%q", bookingID, identity.Subject)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrDateConflict):
			h.logger.Warn("PUT /bookings/{id} - Date conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgDateConflict)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated: booking_id=%d, status=%s", bookingID, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
