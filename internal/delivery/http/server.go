package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"github.com/venue-admin/internal/config"
	"github.com/venue-admin/internal/delivery/http/handler"
	"github.com/venue-admin/internal/delivery/http/middleware"
	apperrors "github.com/venue-admin/internal/pkg/errors"
	"github.com/venue-admin/internal/pkg/metrics"
	"github.com/venue-admin/internal/pkg/utils"
	"go.uber.org/zap"
)

// Handlers - все обработчики API дашборда
type Handlers struct {
	User                *handler.UserHandler
	Venue               *handler.VenueHandler
	VenueImage          *handler.VenueImageHandler
	VenueUnavailability *handler.VenueUnavailabilityHandler
	Health              *handler.HealthHandler
	// Metrics - nil отключает /metrics
	Metrics *metrics.Metrics
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Venue Admin BFF",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App отдаёт fiber.App для app.Test в тестах
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(requestid.New())
	s.app.Use(middleware.Logger(s.logger))
	if s.handlers.Metrics != nil {
		s.app.Use(middleware.Metrics(s.handlers.Metrics))
	}
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.ForwardAuthorization())
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	if s.handlers.Metrics != nil {
		s.app.Get("/metrics", s.handlers.Metrics.Handler())
	}

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Users - /users/stats раньше /users/:id
	users := s.handlers.User
	api.Get("/scopes", users.ListScopes)
	api.Get("/users", users.ListUsers)
	api.Post("/users", users.CreateUser)
	api.Get("/users/stats", users.UserStats)
	api.Patch("/users/:id", users.EditUser)
	api.Delete("/users/:id", users.DeleteUser)
	api.Put("/users/:id/scopes", users.UpdateScopes)

	// Venues
	venues := s.handlers.Venue
	api.Get("/venues", venues.ListVenues)
	api.Post("/venues", venues.CreateVenue)
	api.Get("/venues/stats", venues.VenueStats)
	api.Get("/venues/:id", venues.GetVenue)
	api.Patch("/venues/:id", venues.EditVenue)
	api.Delete("/venues/:id", venues.DeleteVenue)
	api.Patch("/venues/:id/status", venues.UpdateStatus)

	// Venue images - reorder раньше :imageId
	images := s.handlers.VenueImage
	api.Get("/venues/:id/images", images.ListImages)
	api.Post("/venues/:id/images", images.AddImage)
	api.Put("/venues/:id/images/reorder", images.ReorderImages)
	api.Patch("/venues/:id/images/:imageId", images.UpdateImage)
	api.Delete("/venues/:id/images/:imageId", images.DeleteImage)
	api.Put("/venues/:id/images/:imageId/thumbnail", images.SetThumbnail)
	api.Delete("/venues/:id/images/:imageId/thumbnail", images.UnsetThumbnail)
	api.Post("/venues/:id/images/:imageId/move", images.MoveImage)

	// Venue unavailabilities
	unavail := s.handlers.VenueUnavailability
	api.Get("/venues/:id/unavailabilities", unavail.ListUnavailabilities)
	api.Post("/venues/:id/unavailabilities", unavail.CreateUnavailability)
	api.Patch("/venues/:id/unavailabilities/:unavailabilityId", unavail.UpdateUnavailability)
	api.Delete("/venues/:id/unavailabilities/:unavailabilityId", unavail.DeleteUnavailability)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, 405, паника)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			appErr := apperrors.New(httpErrorCode(fe.Code), fe.Message, fe.Code)
			if fe.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", fe.Code), zap.Error(err))
			}
			return c.Status(fe.Code).JSON(utils.ErrorResponse{Error: appErr})
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return apperrors.ErrNotFound.Code
	case fiber.StatusBadRequest, fiber.StatusMethodNotAllowed, fiber.StatusRequestEntityTooLarge:
		return apperrors.ErrInvalidRequest.Code
	default:
		return apperrors.ErrInternalServer.Code
	}
}
