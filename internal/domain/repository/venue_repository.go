package repository

import (
	"context"

	"github.com/venue-admin/internal/domain"
)

// VenueRepository определяет методы для работы с площадками бэкенда
type VenueRepository interface {
	ListVenues(ctx context.Context) ([]domain.VenueListItem, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	CreateVenue(ctx context.Context, in domain.VenueCreate) (*domain.Venue, error)
	UpdateVenue(ctx context.Context, id string, patch domain.VenuePatch) (*domain.Venue, error)
	DeleteVenue(ctx context.Context, id string) error
	UpdateVenueStatus(ctx context.Context, id string, status domain.VenueStatus) (*domain.VenueStatusUpdate, error)
}

// VenueImageRepository - изображения площадки
type VenueImageRepository interface {
	ListImages(ctx context.Context, venueID string) ([]domain.VenueImage, error)
	AddImage(ctx context.Context, venueID string, in domain.VenueImageCreate) (*domain.VenueImage, error)
	UpdateImage(ctx context.Context, venueID, imageID string, in domain.VenueImageUpdate) (*domain.VenueImage, error)
	DeleteImage(ctx context.Context, venueID, imageID string) error
	// ReorderImages - PUT /venues/{id}/images/reorder, returns images in the new order
	ReorderImages(ctx context.Context, venueID string, imageIDs []string) ([]domain.VenueImage, error)
}

// VenueUnavailabilityRepository - периоды недоступности площадки
type VenueUnavailabilityRepository interface {
	ListUnavailabilities(ctx context.Context, venueID string) ([]domain.VenueUnavailability, error)
	CreateUnavailability(ctx context.Context, venueID string, in domain.VenueUnavailabilityInput) (*domain.VenueUnavailability, error)
	UpdateUnavailability(ctx context.Context, venueID, unavailabilityID string, in domain.VenueUnavailabilityInput) (*domain.VenueUnavailability, error)
	DeleteUnavailability(ctx context.Context, venueID, unavailabilityID string) error
}
