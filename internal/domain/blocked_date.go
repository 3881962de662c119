package domain

import "time"

// BlockedDate is an admin-imposed unavailability window, End exclusive
type BlockedDate struct {
	ID                int64
	AccommodationID   int64
	AccommodationName string
	StartDate         time.Time
	EndDate           time.Time
	Reason            string
	CreatedAt         time.Time
}

func (d *BlockedDate) Range() DateRange {
	return DateRange{Start: d.StartDate, End: d.EndDate}
}

// BlockedDateFilter selects blocked ranges for listing
type BlockedDateFilter struct {
	AccommodationID *int64
	Scope           []int64
	Restricted      bool
}
