package dto

import (
	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/pkg/formdiff"
)

// CreateVenueRequest - форма создания площадки
type CreateVenueRequest struct {
	Name               string                       `json:"name" validate:"required,min=2,max=255"`
	Description        string                       `json:"description" validate:"required,min=10"`
	SportTypes         []domain.SportType           `json:"sport_types" validate:"min=1,dive,sport_type"`
	Address            string                       `json:"address" validate:"required,max=500"`
	City               string                       `json:"city" validate:"required,max=100"`
	Latitude           string                       `json:"latitude" validate:"omitempty,coordinate"`
	Longitude          string                       `json:"longitude" validate:"omitempty,coordinate"`
	PricePerHour       string                       `json:"price_per_hour" validate:"required,price"`
	Currency           string                       `json:"currency" validate:"len=3"`
	Capacity           int                          `json:"capacity" validate:"min=1"`
	IsIndoor           bool                         `json:"is_indoor"`
	HasParking         bool                         `json:"has_parking"`
	HasChangingRooms   bool                         `json:"has_changing_rooms"`
	HasShowers         bool                         `json:"has_showers"`
	HasEquipmentRental bool                         `json:"has_equipment_rental"`
	Amenities          []string                     `json:"amenities"`
	WorkingHours       map[string]formdiff.TimeSlot `json:"working_hours" validate:"omitempty,dive"`
}

func (r CreateVenueRequest) ToDomain() domain.VenueCreate {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return domain.VenueCreate{
		Name:               r.Name,
		Description:        r.Description,
		SportTypes:         r.SportTypes,
		Address:            r.Address,
		City:               r.City,
		Latitude:           optional(r.Latitude),
		Longitude:          optional(r.Longitude),
		PricePerHour:       r.PricePerHour,
		Currency:           r.Currency,
		Capacity:           r.Capacity,
		IsIndoor:           r.IsIndoor,
		HasParking:         r.HasParking,
		HasChangingRooms:   r.HasChangingRooms,
		HasShowers:         r.HasShowers,
		HasEquipmentRental: r.HasEquipmentRental,
		Amenities:          amenities,
		WorkingHours:       formdiff.ToAPIWorkingHours(r.WorkingHours),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// EditVenueRequest - форма редактирования площадки. Отсутствующие (null)
// поля и пустые строки не отправляются.
type EditVenueRequest struct {
	Name               string                       `json:"name" validate:"omitempty,min=2,max=255"`
	Description        string                       `json:"description" validate:"omitempty,min=10"`
	SportTypes         []domain.SportType           `json:"sport_types" validate:"omitempty,dive,sport_type"`
	Address            string                       `json:"address" validate:"omitempty,max=500"`
	City               string                       `json:"city" validate:"omitempty,max=100"`
	Latitude           string                       `json:"latitude" validate:"omitempty,coordinate"`
	Longitude          string                       `json:"longitude" validate:"omitempty,coordinate"`
	PricePerHour       string                       `json:"price_per_hour" validate:"omitempty,price"`
	Currency           string                       `json:"currency" validate:"omitempty,len=3"`
	Capacity           *int                         `json:"capacity" validate:"omitempty,min=1"`
	IsIndoor           *bool                        `json:"is_indoor"`
	HasParking         *bool                        `json:"has_parking"`
	HasChangingRooms   *bool                        `json:"has_changing_rooms"`
	HasShowers         *bool                        `json:"has_showers"`
	HasEquipmentRental *bool                        `json:"has_equipment_rental"`
	Amenities          []string                     `json:"amenities"`
	WorkingHours       map[string]formdiff.TimeSlot `json:"working_hours" validate:"omitempty,dive"`
}

type UpdateVenueStatusRequest struct {
	Status domain.VenueStatus `json:"status" validate:"required,venue_status"`
}

// EditResult tells the dashboard whether a PATCH was sent.
type EditResult struct {
	Changed bool     `json:"changed"`
	Fields  []string `json:"fields"`
	Data    any      `json:"data,omitempty"`
}

// VenueStats backs the venues stat cards.
type VenueStats struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	PendingApproval int     `json:"pending_approval"`
	Indoor          int     `json:"indoor"`
	Outdoor         int     `json:"outdoor"`
	AverageRating   float64 `json:"average_rating"`
}
