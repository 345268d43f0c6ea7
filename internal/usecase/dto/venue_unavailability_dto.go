package dto

import "time"

type VenueUnavailabilityRequest struct {
	StartDatetime time.Time `json:"start_datetime" validate:"required"`
	EndDatetime   time.Time `json:"end_datetime" validate:"required,gtefield=StartDatetime"`
	Reason        *string   `json:"reason" validate:"omitempty,max=500"`
}
