package check_availability

import (
	"github.com/Liandro13/method-passion-site/internal/domain"
	checkAvailability "github.com/Liandro13/method-passion-site/internal/usecase/check_availability"
)

// CheckAvailabilityRequest is posted by the public booking form. Keys are camelCase
// to match the form. accommodation is an older alias of accommodationName.
type CheckAvailabilityRequest struct {
	AccommodationID   int64  `json:"accommodationId" validate:"gte=0"`
	AccommodationName string `json:"accommodationName" validate:"max=200"`
	Accommodation     string `json:"accommodation" validate:"max=200"`
	CheckIn           string `json:"checkIn" validate:"omitempty,datetime=2006-01-02"`
	CheckOut          string `json:"checkOut" validate:"omitempty,datetime=2006-01-02"`
}

// Name prefers accommodationName over the alias
func (r *CheckAvailabilityRequest) Name() string {
	if r.AccommodationName != "" {
		return r.AccommodationName
	}
	return r.Accommodation
}

// DateRangeResponse is one occupied span, check-out exclusive
type DateRangeResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Source   string `json:"source"`
}

type CheckAvailabilityResponse struct {
	AccommodationID int64               `json:"accommodationId"`
	Accommodation   string              `json:"accommodation"`
	CheckIn         string              `json:"checkIn,omitempty"`
	CheckOut        string              `json:"checkOut,omitempty"`
	Available       bool                `json:"available"`
	BookedDates     []DateRangeResponse `json:"bookedDates"`
	Conflicts       []DateRangeResponse `json:"conflicts"`
}

func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		AccommodationID:   r.AccommodationID,
		AccommodationName: r.Name(),
		CheckIn:           r.CheckIn,
		CheckOut:          r.CheckOut,
	}
}

func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		AccommodationID: resp.AccommodationID,
		Accommodation:   resp.Accommodation,
		CheckIn:         resp.CheckIn,
		CheckOut:        resp.CheckOut,
		Available:       resp.Available,
		BookedDates:     fromRanges(resp.BookedDates),
		Conflicts:       fromRanges(resp.Conflicts),
	}
}

func fromRanges(ranges []domain.OccupiedRange) []DateRangeResponse {
	result := make([]DateRangeResponse, 0, len(ranges))
	for _, o := range ranges {
		result = append(result, DateRangeResponse{
			CheckIn:  o.Start.Format(domain.DateFormat),
			CheckOut: o.End.Format(domain.DateFormat),
			Source:   string(o.Source),
		})
	}
	return result
}
