package update_booking

import "github.com/Liandro13/method-passion-site/internal/domain"

// Request is a typed partial update. Derived financial values are never accepted.
type Request struct {
	ID    int64
	Patch domain.BookingPatch
}

type Response struct {
	Booking *domain.Booking
}
