package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/pkg/utils"
	"github.com/venue-admin/internal/usecase"
	"github.com/venue-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// UserHandler - пользователи и права доступа
type UserHandler struct {
	userUC  *usecase.UserUseCase
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewUserHandler(userUC *usecase.UserUseCase, statsUC *usecase.StatsUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC:  userUC,
		statsUC: statsUC,
		logger:  logger,
	}
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.User}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userUC.ListUsers(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, users, &utils.Meta{Total: len(users)})
}

// ListScopes godoc
// @Summary List available scopes
// @Tags Users
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /api/v1/scopes [get]
func (h *UserHandler) ListScopes(c *fiber.Ctx) error {
	scopes, err := h.userUC.ListScopes(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, scopes, &utils.Meta{Total: len(scopes)})
}

// CreateUser godoc
// @Summary Create user
// @Description Новый пользователь появляется первым в списке
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User form"
// @Success 201 {object} utils.SuccessResponse{data=domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.userUC.CreateUser(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, user)
}

// EditUser godoc
// @Summary Edit user
// @Description Принимает форму целиком; на бэкенд уходят только изменённые поля. meta.changed=false - запрос не отправлялся.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.EditUserRequest true "Edit form"
// @Success 200 {object} utils.SuccessResponse{data=dto.EditResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/users/{id} [patch]
func (h *UserHandler) EditUser(c *fiber.Ctx) error {
	var req dto.EditUserRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	res, err := h.userUC.EditUser(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, res, &utils.Meta{Changed: &res.Changed})
}

// DeleteUser godoc
// @Summary Delete user
// @Tags Users
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userUC.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// UpdateScopes godoc
// @Summary Replace user scopes
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateScopesRequest true "Scopes"
// @Success 200 {object} utils.SuccessResponse{data=domain.ScopesUpdate}
// @Router /api/v1/users/{id}/scopes [put]
func (h *UserHandler) UpdateScopes(c *fiber.Ctx) error {
	var req dto.UpdateScopesRequest
	if err := utils.ParseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	scopes, err := h.userUC.UpdateScopes(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, domain.ScopesUpdate{Scopes: scopes}, nil)
}

// UserStats godoc
// @Summary User stat cards
// @Tags Users
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.UserStats}
// @Router /api/v1/users/stats [get]
func (h *UserHandler) UserStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.UserStats(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stats, nil)
}
