package domain

import (
	"time"
)

// VenueStatus - жизненный цикл площадки
type VenueStatus string

const (
	VenueStatusActive          VenueStatus = "active"
	VenueStatusInactive        VenueStatus = "inactive"
	VenueStatusMaintenance     VenueStatus = "maintenance"
	VenueStatusPendingApproval VenueStatus = "pending_approval"
)

// VenueStatuses lists every status in display order.
var VenueStatuses = []VenueStatus{
	VenueStatusActive,
	VenueStatusInactive,
	VenueStatusMaintenance,
	VenueStatusPendingApproval,
}

func (s VenueStatus) Valid() bool {
	for _, st := range VenueStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// SportType - вид спорта площадки
type SportType string

const (
	SportFootball   SportType = "football"
	SportBasketball SportType = "basketball"
	SportTennis     SportType = "tennis"
	SportVolleyball SportType = "volleyball"
	SportSwimming   SportType = "swimming"
	SportGym        SportType = "gym"
	SportPadel      SportType = "padel"
	SportOther      SportType = "other"
)

var SportTypes = []SportType{
	SportFootball,
	SportBasketball,
	SportTennis,
	SportVolleyball,
	SportSwimming,
	SportGym,
	SportPadel,
	SportOther,
}

func (s SportType) Valid() bool {
	for _, st := range SportTypes {
		if s == st {
			return true
		}
	}
	return false
}

// Venue - полная карточка площадки (GET /venues/{id})
type Venue struct {
	ID                 string                `json:"id"`
	OwnerID            string                `json:"owner_id"`
	Name               string                `json:"name"`
	Description        string                `json:"description"`
	SportTypes         []SportType           `json:"sport_types"`
	Address            string                `json:"address"`
	City               string                `json:"city"`
	Latitude           *string               `json:"latitude"`
	Longitude          *string               `json:"longitude"`
	PricePerHour       string                `json:"price_per_hour"`
	Currency           string                `json:"currency"`
	Capacity           int                   `json:"capacity"`
	IsIndoor           bool                  `json:"is_indoor"`
	HasParking         bool                  `json:"has_parking"`
	HasChangingRooms   bool                  `json:"has_changing_rooms"`
	HasShowers         bool                  `json:"has_showers"`
	HasEquipmentRental bool                  `json:"has_equipment_rental"`
	Amenities          []string              `json:"amenities"`
	WorkingHours       WorkingHours          `json:"working_hours"`
	Status             VenueStatus           `json:"status"`
	Rating             string                `json:"rating"`
	TotalReviews       int                   `json:"total_reviews"`
	TotalBookings      int                   `json:"total_bookings"`
	UpdatedAt          time.Time             `json:"updated_at"`
	Images             []VenueImage          `json:"images"`
	Unavailabilities   []VenueUnavailability `json:"unavailabilities"`
}

// VenueListItem - проекция Venue для таблицы (GET /venues)
type VenueListItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	City         string      `json:"city"`
	SportTypes   []SportType `json:"sport_types"`
	Status       VenueStatus `json:"status"`
	PricePerHour string      `json:"price_per_hour"`
	Currency     string      `json:"currency"`
	Capacity     int         `json:"capacity"`
	IsIndoor     bool        `json:"is_indoor"`
	Rating       string      `json:"rating"`
	TotalReviews int         `json:"total_reviews"`
	Thumbnail    *string     `json:"thumbnail"`
}

// ListItem projects the venue into its table row. The thumbnail is the first
// image flagged as thumbnail, if any.
func (v *Venue) ListItem() VenueListItem {
	item := VenueListItem{
		ID:           v.ID,
		Rating:       v.Rating,
		TotalReviews: v.TotalReviews,
		Thumbnail:    v.ThumbnailURL(),
	}
	item.MergeProjection(v)
	return item
}

// MergeProjection copies the fields a venue edit can change onto the row.
// Derived stats and the thumbnail are left alone.
func (li *VenueListItem) MergeProjection(v *Venue) {
	li.Name = v.Name
	li.City = v.City
	li.SportTypes = v.SportTypes
	li.Status = v.Status
	li.PricePerHour = v.PricePerHour
	li.Currency = v.Currency
	li.Capacity = v.Capacity
	li.IsIndoor = v.IsIndoor
}

func (v *Venue) ThumbnailURL() *string {
	for _, img := range v.Images {
		if img.IsThumbnail {
			url := img.URL
			return &url
		}
	}
	return nil
}

// VenueCreate is the body sent to POST /venues.
type VenueCreate struct {
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	SportTypes         []SportType  `json:"sport_types"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	Latitude           *string      `json:"latitude"`
	Longitude          *string      `json:"longitude"`
	PricePerHour       string       `json:"price_per_hour"`
	Currency           string       `json:"currency"`
	Capacity           int          `json:"capacity"`
	IsIndoor           bool         `json:"is_indoor"`
	HasParking         bool         `json:"has_parking"`
	HasChangingRooms   bool         `json:"has_changing_rooms"`
	HasShowers         bool         `json:"has_showers"`
	HasEquipmentRental bool         `json:"has_equipment_rental"`
	Amenities          []string     `json:"amenities"`
	WorkingHours       WorkingHours `json:"working_hours"`
}

// VenuePatch is a sparse PATCH /venues/{id} body.
type VenuePatch map[string]interface{}

type VenueStatusUpdate struct {
	Status VenueStatus `json:"status"`
}
