package backend

import (
	"context"
	"net/http"

	"github.com/venue-admin/internal/domain"
)

func (c *Client) ListVenues(ctx context.Context) ([]domain.VenueListItem, error) {
	var venues []domain.VenueListItem
	if err := c.do(ctx, http.MethodGet, c.path("venues"), nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *Client) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	var venue domain.Venue
	if err := c.do(ctx, http.MethodGet, c.path("venues", id), nil, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) CreateVenue(ctx context.Context, in domain.VenueCreate) (*domain.Venue, error) {
	var venue domain.Venue
	if err := c.do(ctx, http.MethodPost, c.path("venues"), in, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) UpdateVenue(ctx context.Context, id string, patch domain.VenuePatch) (*domain.Venue, error) {
	var venue domain.Venue
	if err := c.do(ctx, http.MethodPatch, c.path("venues", id), patch, &venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) DeleteVenue(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.path("venues", id), nil, nil)
}

func (c *Client) UpdateVenueStatus(ctx context.Context, id string, status domain.VenueStatus) (*domain.VenueStatusUpdate, error) {
	var out domain.VenueStatusUpdate
	body := domain.VenueStatusUpdate{Status: status}
	if err := c.do(ctx, http.MethodPatch, c.path("venues", id, "status"), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
