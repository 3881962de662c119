package list_bookings

import (
	"fmt"
	"strconv"

	"github.com/Liandro13/method-passion-site/internal/domain"
	"github.com/Liandro13/method-passion-site/internal/service/bookings/models"
)

// ToServiceRequest parses the optional accommodation_id and status query parameters
func ToServiceRequest(accommodationIDStr, statusStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if accommodationIDStr != "" {
		id, err := strconv.ParseInt(accommodationIDStr, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid accommodation_id %q", accommodationIDStr)
		}
		req.AccommodationID = &id
	}

	if statusStr != "" {
		status, err := domain.ParseBookingStatus(statusStr)
		if err != nil {
			return nil, err
		}
		req.Status = &status
	}

	return req, nil
}
