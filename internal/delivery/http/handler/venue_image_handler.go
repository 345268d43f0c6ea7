package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venue-admin/internal/pkg/utils"
	"github.com/venue-admin/internal/usecase"
	"github.com/venue-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// VenueImageHandler - галерея площадки
type VenueImageHandler struct {
	imageUC *usecase.VenueImageUseCase
	logger  *zap.Logger
}

func NewVenueImageHandler(imageUC *usecase.VenueImageUseCase, logger *zap.Logger) *VenueImageHandler {
	return &VenueImageHandler{
		imageUC: imageUC,
		logger:  logger,
	}
}

// ListImages godoc
// @Summary List venue images
// @Tags Venue images
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueImage}
// @Router /api/v1/venues/{id}/images [get]
func (h *VenueImageHandler) ListImages(c *fiber.Ctx) error {
	images, err := h.imageUC.ListImages(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, images, &utils.Meta{Total: len(images)})
}

// AddImage godoc
// @Summary Add venue image
// @Description Без order изображение добавляется в конец
// @Tags Venue images
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.AddVenueImageRequest true "Image"
// @Success 201 {object} utils.SuccessResponse{data=domain.VenueImage}
// @Router /api/v1/venues/{id}/images [post]
func (h *VenueImageHandler) AddImage(c *fiber.Ctx) error {
	var req dto.AddVenueImageRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	image, err := h.imageUC.AddImage(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, image)
}

// UpdateImage godoc
// @Summary Update venue image
// @Tags Venue images
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param imageId path string true "Image ID"
// @Param request body dto.UpdateVenueImageRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse{data=domain.VenueImage}
// @Router /api/v1/venues/{id}/images/{imageId} [patch]
func (h *VenueImageHandler) UpdateImage(c *fiber.Ctx) error {
	var req dto.UpdateVenueImageRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	image, err := h.imageUC.UpdateImage(c.UserContext(), c.Params("id"), c.Params("imageId"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, image, nil)
}

// SetThumbnail godoc
// @Summary Mark image as thumbnail
// @Tags Venue images
// @Produce json
// @Param id path string true "Venue ID"
// @Param imageId path string true "Image ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.VenueImage}
// @Router /api/v1/venues/{id}/images/{imageId}/thumbnail [put]
func (h *VenueImageHandler) SetThumbnail(c *fiber.Ctx) error {
	return h.setThumbnail(c, true)
}

// UnsetThumbnail godoc
// @Summary Clear image thumbnail flag
// @Tags Venue images
// @Produce json
// @Param id path string true "Venue ID"
// @Param imageId path string true "Image ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.VenueImage}
// @Router /api/v1/venues/{id}/images/{imageId}/thumbnail [delete]
func (h *VenueImageHandler) UnsetThumbnail(c *fiber.Ctx) error {
	return h.setThumbnail(c, false)
}

func (h *VenueImageHandler) setThumbnail(c *fiber.Ctx, thumbnail bool) error {
	image, err := h.imageUC.SetThumbnail(c.UserContext(), c.Params("id"), c.Params("imageId"), thumbnail)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, image, nil)
}

// DeleteImage godoc
// @Summary Delete venue image
// @Tags Venue images
// @Param id path string true "Venue ID"
// @Param imageId path string true "Image ID"
// @Success 204
// @Router /api/v1/venues/{id}/images/{imageId} [delete]
func (h *VenueImageHandler) DeleteImage(c *fiber.Ctx) error {
	if err := h.imageUC.DeleteImage(c.UserContext(), c.Params("id"), c.Params("imageId")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// ReorderImages godoc
// @Summary Reorder venue images
// @Description image_ids - полный список изображений площадки в новом порядке
// @Tags Venue images
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.ReorderVenueImagesRequest true "New order"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueImage}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venues/{id}/images/reorder [put]
func (h *VenueImageHandler) ReorderImages(c *fiber.Ctx) error {
	var req dto.ReorderVenueImagesRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	images, err := h.imageUC.ReorderImages(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, images, &utils.Meta{Total: len(images)})
}

// MoveImageResponse - результат сдвига изображения
type MoveImageResponse struct {
	Moved  bool        `json:"moved"`
	Images interface{} `json:"images"`
}

// MoveImage godoc
// @Summary Move image one position up or down
// @Tags Venue images
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param imageId path string true "Image ID"
// @Param request body dto.MoveVenueImageRequest true "Direction"
// @Success 200 {object} utils.SuccessResponse{data=MoveImageResponse}
// @Router /api/v1/venues/{id}/images/{imageId}/move [post]
func (h *VenueImageHandler) MoveImage(c *fiber.Ctx) error {
	var req dto.MoveVenueImageRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	images, moved, err := h.imageUC.MoveImage(c.UserContext(), c.Params("id"), c.Params("imageId"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, MoveImageResponse{Moved: moved, Images: images}, &utils.Meta{Changed: &moved})
}
