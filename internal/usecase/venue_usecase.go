package usecase

import (
	"context"

	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/domain/repository"
	"github.com/venue-admin/internal/pkg/errors"
	"github.com/venue-admin/internal/pkg/formdiff"
	"github.com/venue-admin/internal/pkg/validator"
	"github.com/venue-admin/internal/querycache"
	"github.com/venue-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// VenueUseCase - площадки: список, карточка, создание, правка, статус
type VenueUseCase struct {
	repo   repository.VenueRepository
	cache  *querycache.Cache
	sync   *CacheSync
	logger *zap.Logger
}

func NewVenueUseCase(repo repository.VenueRepository, sync *CacheSync, logger *zap.Logger) *VenueUseCase {
	return &VenueUseCase{
		repo:   repo,
		cache:  sync.Cache(),
		sync:   sync,
		logger: logger,
	}
}

func (uc *VenueUseCase) ListVenues(ctx context.Context) ([]domain.VenueListItem, error) {
	return querycache.ReadAs(ctx, uc.cache, domain.VenuesKey(), uc.repo.ListVenues)
}

// GetVenue отдаёт полную карточку площадки. Пустой id - ошибка запроса,
// бэкенд не вызывается.
func (uc *VenueUseCase) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id is required")
	}
	return querycache.ReadAs(ctx, uc.cache, domain.VenueKey(id), func(ctx context.Context) (*domain.Venue, error) {
		return uc.repo.GetVenue(ctx, id)
	})
}

// CreateVenue создаёт площадку, ставит её строку первой в список и кладёт
// карточку в кеш.
func (uc *VenueUseCase) CreateVenue(ctx context.Context, req dto.CreateVenueRequest) (*domain.Venue, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	venue, err := uc.repo.CreateVenue(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	item := venue.ListItem()
	querycache.UpdateAs(uc.cache, domain.VenuesKey(), func(prev []domain.VenueListItem) []domain.VenueListItem {
		out := make([]domain.VenueListItem, 0, len(prev)+1)
		out = append(out, item)
		return append(out, prev...)
	})
	uc.cache.Write(domain.VenueKey(venue.ID), func(interface{}) interface{} { return venue })
	uc.sync.Touch(ctx, domain.VenuesKey())

	uc.logger.Info("Venue created", zap.String("venue_id", venue.ID), zap.String("name", venue.Name))
	return venue, nil
}

// UpdateVenue отправляет частичный PATCH, обновляет строку списка по id и
// инвалидирует карточку вместе с вложенными списками.
func (uc *VenueUseCase) UpdateVenue(ctx context.Context, id string, patch domain.VenuePatch) (*domain.Venue, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id is required")
	}

	venue, err := uc.repo.UpdateVenue(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	querycache.UpdateAs(uc.cache, domain.VenuesKey(), func(prev []domain.VenueListItem) []domain.VenueListItem {
		return mapVenues(prev, id, func(li domain.VenueListItem) domain.VenueListItem {
			li.MergeProjection(venue)
			return li
		})
	})
	uc.sync.Touch(ctx, domain.VenuesKey())
	uc.sync.AfterMutation(ctx, MutationVenueUpdate, id)

	uc.logger.Info("Venue updated", zap.String("venue_id", id), zap.Int("fields", len(patch)))
	return venue, nil
}

// EditVenue сравнивает форму с последней загруженной карточкой. Если карточку
// получить не удалось, сравнение идёт со строкой списка. Часы работы
// сравниваются отдельно по содержимому.
func (uc *VenueUseCase) EditVenue(ctx context.Context, id string, req dto.EditVenueRequest) (*dto.EditResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	original, hours, err := uc.editBaseline(ctx, id)
	if err != nil {
		return nil, err
	}

	submitted, err := formdiff.ToMap(req)
	if err != nil {
		return nil, errors.ErrInternalServer.Wrap(err)
	}

	changed := formdiff.Changed(submitted, original, formdiff.Options{Skip: []string{"working_hours"}})
	if req.WorkingHours != nil {
		apiHours := formdiff.ToAPIWorkingHours(req.WorkingHours)
		if !formdiff.WorkingHoursEqual(apiHours, hours) {
			changed["working_hours"] = apiHours
		}
	}

	if len(changed) == 0 {
		return &dto.EditResult{Changed: false, Fields: []string{}}, nil
	}

	venue, err := uc.UpdateVenue(ctx, id, domain.VenuePatch(changed))
	if err != nil {
		return nil, err
	}
	return &dto.EditResult{Changed: true, Fields: sortedKeys(changed), Data: venue}, nil
}

func (uc *VenueUseCase) editBaseline(ctx context.Context, id string) (map[string]interface{}, domain.WorkingHours, error) {
	venue, err := uc.GetVenue(ctx, id)
	if err == nil {
		original, err := formdiff.ToMap(venue)
		if err != nil {
			return nil, nil, errors.ErrInternalServer.Wrap(err)
		}
		return original, venue.WorkingHours, nil
	}
	if appErr, ok := errors.As(err); ok && appErr.Code == errors.ErrInvalidRequest.Code {
		return nil, nil, err
	}

	uc.logger.Warn("Venue detail unavailable, diffing against list row",
		zap.String("venue_id", id), zap.Error(err))

	venues, listErr := uc.ListVenues(ctx)
	if listErr != nil {
		return nil, nil, err
	}
	for _, li := range venues {
		if li.ID == id {
			original, mapErr := formdiff.ToMap(li)
			if mapErr != nil {
				return nil, nil, errors.ErrInternalServer.Wrap(mapErr)
			}
			return original, nil, nil
		}
	}
	return nil, nil, err
}

// DeleteVenue удаляет площадку, убирает строку из списка и выбрасывает из
// кеша карточку и её вложенные списки.
func (uc *VenueUseCase) DeleteVenue(ctx context.Context, id string) error {
	if id == "" {
		return errors.ErrInvalidRequest.WithMessage("venue id is required")
	}

	if err := uc.repo.DeleteVenue(ctx, id); err != nil {
		return err
	}

	querycache.UpdateAs(uc.cache, domain.VenuesKey(), func(prev []domain.VenueListItem) []domain.VenueListItem {
		out := make([]domain.VenueListItem, 0, len(prev))
		for _, li := range prev {
			if li.ID != id {
				out = append(out, li)
			}
		}
		return out
	})
	uc.sync.Touch(ctx, domain.VenuesKey())
	uc.sync.Remove(ctx, domain.VenueKey(id))

	uc.logger.Info("Venue deleted", zap.String("venue_id", id))
	return nil
}

// UpdateStatus меняет статус площадки. Если выбранный статус совпадает с
// закешированным, запрос не отправляется.
func (uc *VenueUseCase) UpdateStatus(ctx context.Context, id string, req dto.UpdateVenueStatusRequest) (*dto.EditResult, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id is required")
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	if current, ok := uc.cachedStatus(id); ok && current == req.Status {
		return &dto.EditResult{Changed: false, Fields: []string{}}, nil
	}

	out, err := uc.repo.UpdateVenueStatus(ctx, id, req.Status)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if out != nil && out.Status != "" {
		status = out.Status
	}

	querycache.UpdateAs(uc.cache, domain.VenuesKey(), func(prev []domain.VenueListItem) []domain.VenueListItem {
		return mapVenues(prev, id, func(li domain.VenueListItem) domain.VenueListItem {
			li.Status = status
			return li
		})
	})
	uc.sync.Touch(ctx, domain.VenuesKey())
	uc.sync.AfterMutation(ctx, MutationVenueStatus, id)

	uc.logger.Info("Venue status updated", zap.String("venue_id", id), zap.String("status", string(status)))
	return &dto.EditResult{
		Changed: true,
		Fields:  []string{"status"},
		Data:    domain.VenueStatusUpdate{Status: status},
	}, nil
}

// cachedStatus prefers the list row, which the status control is rendered from.
// Stale entries don't count: after an invalidation the backend may disagree.
func (uc *VenueUseCase) cachedStatus(id string) (domain.VenueStatus, bool) {
	if venues, ok := querycache.FreshAs[[]domain.VenueListItem](uc.cache, domain.VenuesKey()); ok {
		for _, li := range venues {
			if li.ID == id {
				return li.Status, true
			}
		}
	}
	if venue, ok := querycache.FreshAs[*domain.Venue](uc.cache, domain.VenueKey(id)); ok && venue != nil {
		return venue.Status, true
	}
	return "", false
}

func mapVenues(prev []domain.VenueListItem, id string, fn func(domain.VenueListItem) domain.VenueListItem) []domain.VenueListItem {
	out := make([]domain.VenueListItem, len(prev))
	for i, li := range prev {
		if li.ID == id {
			li = fn(li)
		}
		out[i] = li
	}
	return out
}
