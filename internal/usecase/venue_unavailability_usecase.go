package usecase

import (
	"context"
	"strings"

	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/domain/repository"
	"github.com/venue-admin/internal/pkg/errors"
	"github.com/venue-admin/internal/pkg/validator"
	"github.com/venue-admin/internal/querycache"
	"github.com/venue-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// VenueUnavailabilityUseCase - периоды недоступности площадки
type VenueUnavailabilityUseCase struct {
	repo   repository.VenueUnavailabilityRepository
	cache  *querycache.Cache
	sync   *CacheSync
	logger *zap.Logger
}

func NewVenueUnavailabilityUseCase(repo repository.VenueUnavailabilityRepository, sync *CacheSync, logger *zap.Logger) *VenueUnavailabilityUseCase {
	return &VenueUnavailabilityUseCase{
		repo:   repo,
		cache:  sync.Cache(),
		sync:   sync,
		logger: logger,
	}
}

func (uc *VenueUnavailabilityUseCase) ListUnavailabilities(ctx context.Context, venueID string) ([]domain.VenueUnavailability, error) {
	if venueID == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id is required")
	}
	return querycache.ReadAs(ctx, uc.cache, domain.VenueUnavailabilitiesKey(venueID), func(ctx context.Context) ([]domain.VenueUnavailability, error) {
		return uc.repo.ListUnavailabilities(ctx, venueID)
	})
}

func (uc *VenueUnavailabilityUseCase) CreateUnavailability(ctx context.Context, venueID string, req dto.VenueUnavailabilityRequest) (*domain.VenueUnavailability, error) {
	if venueID == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id is required")
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	out, err := uc.repo.CreateUnavailability(ctx, venueID, unavailabilityInput(req))
	if err != nil {
		return nil, err
	}
	uc.sync.AfterMutation(ctx, MutationVenueUnavailability, venueID)

	uc.logger.Info("Venue unavailability created", zap.String("venue_id", venueID), zap.String("unavailability_id", out.ID))
	return out, nil
}

func (uc *VenueUnavailabilityUseCase) UpdateUnavailability(ctx context.Context, venueID, unavailabilityID string, req dto.VenueUnavailabilityRequest) (*domain.VenueUnavailability, error) {
	if venueID == "" || unavailabilityID == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id and unavailability id are required")
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	out, err := uc.repo.UpdateUnavailability(ctx, venueID, unavailabilityID, unavailabilityInput(req))
	if err != nil {
		return nil, err
	}
	uc.sync.AfterMutation(ctx, MutationVenueUnavailability, venueID)

	uc.logger.Info("Venue unavailability updated", zap.String("venue_id", venueID), zap.String("unavailability_id", unavailabilityID))
	return out, nil
}

func (uc *VenueUnavailabilityUseCase) DeleteUnavailability(ctx context.Context, venueID, unavailabilityID string) error {
	if venueID == "" || unavailabilityID == "" {
		return errors.ErrInvalidRequest.WithMessage("venue id and unavailability id are required")
	}

	if err := uc.repo.DeleteUnavailability(ctx, venueID, unavailabilityID); err != nil {
		return err
	}
	uc.sync.AfterMutation(ctx, MutationVenueUnavailability, venueID)

	uc.logger.Info("Venue unavailability deleted", zap.String("venue_id", venueID), zap.String("unavailability_id", unavailabilityID))
	return nil
}

// unavailabilityInput: times go out in UTC, a blank reason is sent as null
func unavailabilityInput(req dto.VenueUnavailabilityRequest) domain.VenueUnavailabilityInput {
	var reason *string
	if req.Reason != nil {
		if trimmed := strings.TrimSpace(*req.Reason); trimmed != "" {
			reason = &trimmed
		}
	}
	return domain.VenueUnavailabilityInput{
		StartDatetime: req.StartDatetime.UTC(),
		EndDatetime:   req.EndDatetime.UTC(),
		Reason:        reason,
	}
}
