package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venue-admin/internal/pkg/utils"
	"github.com/venue-admin/internal/usecase"
	"github.com/venue-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// VenueHandler - площадки
type VenueHandler struct {
	venueUC *usecase.VenueUseCase
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewVenueHandler(venueUC *usecase.VenueUseCase, statsUC *usecase.StatsUseCase, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{
		venueUC: venueUC,
		statsUC: statsUC,
		logger:  logger,
	}
}

// ListVenues godoc
// @Summary List venues
// @Tags Venues
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.VenueListItem}
// @Router /api/v1/venues [get]
func (h *VenueHandler) ListVenues(c *fiber.Ctx) error {
	venues, err := h.venueUC.ListVenues(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, venues, &utils.Meta{Total: len(venues)})
}

// GetVenue godoc
// @Summary Venue detail
// @Tags Venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Venue}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/venues/{id} [get]
func (h *VenueHandler) GetVenue(c *fiber.Ctx) error {
	venue, err := h.venueUC.GetVenue(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, venue, nil)
}

// CreateVenue godoc
// @Summary Create venue
// @Description Часы работы принимаются в виде формы {enabled, open, close} по дням
// @Tags Venues
// @Accept json
// @Produce json
// @Param request body dto.CreateVenueRequest true "Venue form"
// @Success 201 {object} utils.SuccessResponse{data=domain.Venue}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venues [post]
func (h *VenueHandler) CreateVenue(c *fiber.Ctx) error {
	var req dto.CreateVenueRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	venue, err := h.venueUC.CreateVenue(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, venue)
}

// EditVenue godoc
// @Summary Edit venue
// @Description Отправляет только изменённые поля; часы работы сравниваются целиком
// @Tags Venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.EditVenueRequest true "Edit form"
// @Success 200 {object} utils.SuccessResponse{data=dto.EditResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venues/{id} [patch]
func (h *VenueHandler) EditVenue(c *fiber.Ctx) error {
	var req dto.EditVenueRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.venueUC.EditVenue(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, &utils.Meta{Changed: &res.Changed})
}

// DeleteVenue godoc
// @Summary Delete venue
// @Tags Venues
// @Param id path string true "Venue ID"
// @Success 204
// @Router /api/v1/venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *fiber.Ctx) error {
	if err := h.venueUC.DeleteVenue(c.UserContext(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// UpdateStatus godoc
// @Summary Change venue status
// @Description Тот же статус - запрос не отправляется (meta.changed=false)
// @Tags Venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.UpdateVenueStatusRequest true "Status"
// @Success 200 {object} utils.SuccessResponse{data=dto.EditResult}
// @Router /api/v1/venues/{id}/status [patch]
func (h *VenueHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateVenueStatusRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.venueUC.UpdateStatus(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, &utils.Meta{Changed: &res.Changed})
}

// VenueStats godoc
// @Summary Venue stat cards
// @Tags Venues
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.VenueStats}
// @Router /api/v1/venues/stats [get]
func (h *VenueHandler) VenueStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.VenueStats(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stats, nil)
}
