package backend

import (
	"context"
	"net/http"

	"github.com/venue-admin/internal/domain"
)

func (c *Client) ListUnavailabilities(ctx context.Context, venueID string) ([]domain.VenueUnavailability, error) {
	var out []domain.VenueUnavailability
	if err := c.do(ctx, http.MethodGet, c.path("venues", venueID, "unavailabilities"), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUnavailability(ctx context.Context, venueID string, in domain.VenueUnavailabilityInput) (*domain.VenueUnavailability, error) {
	var out domain.VenueUnavailability
	if err := c.do(ctx, http.MethodPost, c.path("venues", venueID, "unavailabilities"), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUnavailability(ctx context.Context, venueID, unavailabilityID string, in domain.VenueUnavailabilityInput) (*domain.VenueUnavailability, error) {
	var out domain.VenueUnavailability
	if err := c.do(ctx, http.MethodPatch, c.path("venues", venueID, "unavailabilities", unavailabilityID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUnavailability(ctx context.Context, venueID, unavailabilityID string) error {
	return c.do(ctx, http.MethodDelete, c.path("venues", venueID, "unavailabilities", unavailabilityID), nil, nil)
}
