package backend

import (
	"context"
	"net/http"

	"github.com/venue-admin/internal/domain"
)

func (c *Client) ListImages(ctx context.Context, venueID string) ([]domain.VenueImage, error) {
	var images []domain.VenueImage
	if err := c.do(ctx, http.MethodGet, c.path("venues", venueID, "images"), nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (c *Client) AddImage(ctx context.Context, venueID string, in domain.VenueImageCreate) (*domain.VenueImage, error) {
	var img domain.VenueImage
	if err := c.do(ctx, http.MethodPost, c.path("venues", venueID, "images"), in, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

func (c *Client) UpdateImage(ctx context.Context, venueID, imageID string, in domain.VenueImageUpdate) (*domain.VenueImage, error) {
	var img domain.VenueImage
	if err := c.do(ctx, http.MethodPatch, c.path("venues", venueID, "images", imageID), in, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

func (c *Client) DeleteImage(ctx context.Context, venueID, imageID string) error {
	return c.do(ctx, http.MethodDelete, c.path("venues", venueID, "images", imageID), nil, nil)
}

func (c *Client) ReorderImages(ctx context.Context, venueID string, imageIDs []string) ([]domain.VenueImage, error) {
	var images []domain.VenueImage
	body := domain.VenueImageReorder{ImageIDs: imageIDs}
	if err := c.do(ctx, http.MethodPut, c.path("venues", venueID, "images", "reorder"), body, &images); err != nil {
		return nil, err
	}
	return images, nil
}
