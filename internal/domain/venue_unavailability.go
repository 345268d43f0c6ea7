package domain

import "time"

// VenueUnavailability - период, когда площадка закрыта для бронирования
type VenueUnavailability struct {
	ID            string    `json:"id"`
	VenueID       string    `json:"venue_id"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Reason        *string   `json:"reason"`
}

// VenueUnavailabilityInput is used for both POST and PATCH; the dashboard
// always sends the full triple.
type VenueUnavailabilityInput struct {
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Reason        *string   `json:"reason"`
}
