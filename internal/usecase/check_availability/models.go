package check_availability

import "github.com/Liandro13/method-passion-site/internal/domain"

// Request names the accommodation by ID or by display name. Dates are YYYY-MM-DD
// and optional; without both the check is skipped.
type Request struct {
	AccommodationID   int64
	AccommodationName string
	CheckIn           string
	CheckOut          string
}

type Response struct {
	AccommodationID int64
	Accommodation   string
	CheckIn         string
	CheckOut        string
	Available       bool
	BookedDates     []domain.OccupiedRange
	Conflicts       []domain.OccupiedRange
}
