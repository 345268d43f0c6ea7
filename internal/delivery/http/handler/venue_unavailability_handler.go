package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venue-admin/internal/pkg/utils"
	"github.com/venue-admin/internal/usecase"
	"github.com/venue-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// VenueUnavailabilityHandler - периоды недоступности площадки
type VenueUnavailabilityHandler struct {
	unavailabilityUC *usecase.VenueUnavailabilityUseCase
	logger           *zap.Logger
}

func NewVenueUnavailabilityHandler(unavailabilityUC *usecase.VenueUnavailabilityUseCase, logger *zap.Logger) *VenueUnavailabilityHandler {
	return &VenueUnavailabilityHandler{
		unavailabilityUC: unavailabilityUC,
		logger:           logger,
	}
}

// ListUnavailabilities godoc
// @Summary List venue unavailabilities
// @Tags Venue unavailabilities
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueUnavailability}
// @Router /api/v1/venues/{id}/unavailabilities [get]
func (h *VenueUnavailabilityHandler) ListUnavailabilities(c *fiber.Ctx) error {
	list, err := h.unavailabilityUC.ListUnavailabilities(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, list, &utils.Meta{Total: len(list)})
}

// CreateUnavailability godoc
// @Summary Add unavailability period
// @Tags Venue unavailabilities
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.VenueUnavailabilityRequest true "Period"
// @Success 201 {object} utils.SuccessResponse{data=domain.VenueUnavailability}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venues/{id}/unavailabilities [post]
func (h *VenueUnavailabilityHandler) CreateUnavailability(c *fiber.Ctx) error {
	var req dto.VenueUnavailabilityRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	out, err := h.unavailabilityUC.CreateUnavailability(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, out)
}

// UpdateUnavailability godoc
// @Summary Update unavailability period
// @Tags Venue unavailabilities
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param unavailabilityId path string true "Unavailability ID"
// @Param request body dto.VenueUnavailabilityRequest true "Period"
// @Success 200 {object} utils.SuccessResponse{data=domain.VenueUnavailability}
// @Router /api/v1/venues/{id}/unavailabilities/{unavailabilityId} [patch]
func (h *VenueUnavailabilityHandler) UpdateUnavailability(c *fiber.Ctx) error {
	var req dto.VenueUnavailabilityRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	out, err := h.unavailabilityUC.UpdateUnavailability(c.UserContext(), c.Params("id"), c.Params("unavailabilityId"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, out, nil)
}

// DeleteUnavailability godoc
// @Summary Delete unavailability period
// @Tags Venue unavailabilities
// @Param id path string true "Venue ID"
// @Param unavailabilityId path string true "Unavailability ID"
// @Success 204
// @Router /api/v1/venues/{id}/unavailabilities/{unavailabilityId} [delete]
func (h *VenueUnavailabilityHandler) DeleteUnavailability(c *fiber.Ctx) error {
	if err := h.unavailabilityUC.DeleteUnavailability(c.UserContext(), c.Params("id"), c.Params("unavailabilityId")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
