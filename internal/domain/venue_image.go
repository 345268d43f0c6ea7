package domain

// VenueImage - изображение площадки
type VenueImage struct {
	ID          string `json:"id"`
	VenueID     string `json:"venue_id"`
	URL         string `json:"url"`
	IsThumbnail bool   `json:"is_thumbnail"`
	Order       int    `json:"order"`
}

type VenueImageCreate struct {
	URL         string `json:"url"`
	IsThumbnail bool   `json:"is_thumbnail"`
	Order       *int   `json:"order,omitempty"`
}

// VenueImageUpdate - nil fields are omitted from the PATCH body
type VenueImageUpdate struct {
	URL         *string `json:"url,omitempty"`
	IsThumbnail *bool   `json:"is_thumbnail,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

type VenueImageReorder struct {
	ImageIDs []string `json:"image_ids"`
}
