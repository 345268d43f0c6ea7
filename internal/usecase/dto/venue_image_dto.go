package dto

type AddVenueImageRequest struct {
	URL         string `json:"url" validate:"required,url"`
	IsThumbnail bool   `json:"is_thumbnail"`
	// Order defaults to the number of images already attached
	Order *int `json:"order" validate:"omitempty,min=0"`
}

type UpdateVenueImageRequest struct {
	URL         *string `json:"url" validate:"omitempty,url"`
	IsThumbnail *bool   `json:"is_thumbnail"`
	Order       *int    `json:"order" validate:"omitempty,min=0"`
}

type ReorderVenueImagesRequest struct {
	ImageIDs []string `json:"image_ids" validate:"min=1,dive,required"`
}

// Move directions
const (
	MoveUp   = "up"
	MoveDown = "down"
)

type MoveVenueImageRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}
