package usecase

import (
	"context"

	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/domain/repository"
	"github.com/venue-admin/internal/pkg/errors"
	"github.com/venue-admin/internal/pkg/validator"
	"github.com/venue-admin/internal/querycache"
	"github.com/venue-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// VenueImageUseCase - галерея площадки. Все изменения инвалидируют список
// изображений, карточку и список площадок (миниатюра).
type VenueImageUseCase struct {
	repo   repository.VenueImageRepository
	cache  *querycache.Cache
	sync   *CacheSync
	logger *zap.Logger
}

func NewVenueImageUseCase(repo repository.VenueImageRepository, sync *CacheSync, logger *zap.Logger) *VenueImageUseCase {
	return &VenueImageUseCase{
		repo:   repo,
		cache:  sync.Cache(),
		sync:   sync,
		logger: logger,
	}
}

func (uc *VenueImageUseCase) ListImages(ctx context.Context, venueID string) ([]domain.VenueImage, error) {
	if venueID == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id is required")
	}
	return querycache.ReadAs(ctx, uc.cache, domain.VenueImagesKey(venueID), func(ctx context.Context) ([]domain.VenueImage, error) {
		return uc.repo.ListImages(ctx, venueID)
	})
}

// AddImage добавляет изображение. Без явного order оно встаёт в конец галереи.
func (uc *VenueImageUseCase) AddImage(ctx context.Context, venueID string, req dto.AddVenueImageRequest) (*domain.VenueImage, error) {
	if venueID == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id is required")
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	in := domain.VenueImageCreate{
		URL:         req.URL,
		IsThumbnail: req.IsThumbnail,
		Order:       req.Order,
	}
	if in.Order == nil {
		// the backend picks the order itself if the gallery can't be loaded
		if images, err := uc.ListImages(ctx, venueID); err == nil {
			order := len(images)
			in.Order = &order
		} else {
			uc.logger.Warn("Failed to load gallery for default order",
				zap.String("venue_id", venueID), zap.Error(err))
		}
	}

	image, err := uc.repo.AddImage(ctx, venueID, in)
	if err != nil {
		return nil, err
	}
	uc.sync.AfterMutation(ctx, MutationVenueImage, venueID)

	uc.logger.Info("Venue image added", zap.String("venue_id", venueID), zap.String("image_id", image.ID))
	return image, nil
}

func (uc *VenueImageUseCase) UpdateImage(ctx context.Context, venueID, imageID string, req dto.UpdateVenueImageRequest) (*domain.VenueImage, error) {
	if venueID == "" || imageID == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id and image id are required")
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	image, err := uc.repo.UpdateImage(ctx, venueID, imageID, domain.VenueImageUpdate{
		URL:         req.URL,
		IsThumbnail: req.IsThumbnail,
		Order:       req.Order,
	})
	if err != nil {
		return nil, err
	}
	uc.sync.AfterMutation(ctx, MutationVenueImage, venueID)

	uc.logger.Info("Venue image updated", zap.String("venue_id", venueID), zap.String("image_id", imageID))
	return image, nil
}

// SetThumbnail помечает изображение миниатюрой или снимает пометку.
// Снятие пометки с остальных изображений остаётся за бэкендом.
func (uc *VenueImageUseCase) SetThumbnail(ctx context.Context, venueID, imageID string, thumbnail bool) (*domain.VenueImage, error) {
	return uc.UpdateImage(ctx, venueID, imageID, dto.UpdateVenueImageRequest{IsThumbnail: &thumbnail})
}

func (uc *VenueImageUseCase) DeleteImage(ctx context.Context, venueID, imageID string) error {
	if venueID == "" || imageID == "" {
		return errors.ErrInvalidRequest.WithMessage("venue id and image id are required")
	}

	if err := uc.repo.DeleteImage(ctx, venueID, imageID); err != nil {
		return err
	}
	uc.sync.AfterMutation(ctx, MutationVenueImage, venueID)

	uc.logger.Info("Venue image deleted", zap.String("venue_id", venueID), zap.String("image_id", imageID))
	return nil
}

// ReorderImages задаёт полный порядок галереи. Если галерея закеширована
// и свежая, ids должны быть её перестановкой; иначе проверяет бэкенд.
func (uc *VenueImageUseCase) ReorderImages(ctx context.Context, venueID string, req dto.ReorderVenueImagesRequest) ([]domain.VenueImage, error) {
	if venueID == "" {
		return nil, errors.ErrInvalidRequest.WithMessage("venue id is required")
	}
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if dup, ok := firstDuplicate(req.ImageIDs); ok {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"image_ids": "Duplicate image id " + dup + ".",
		})
	}
	if cached, ok := querycache.FreshAs[[]domain.VenueImage](uc.cache, domain.VenueImagesKey(venueID)); ok {
		if !isPermutation(req.ImageIDs, cached) {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"image_ids": "Must list every image of the venue exactly once.",
			})
		}
	}

	images, err := uc.repo.ReorderImages(ctx, venueID, req.ImageIDs)
	if err != nil {
		return nil, err
	}
	uc.sync.AfterMutation(ctx, MutationVenueImage, venueID)

	uc.logger.Info("Venue images reordered", zap.String("venue_id", venueID), zap.Int("count", len(req.ImageIDs)))
	return images, nil
}

// MoveImage сдвигает изображение на одну позицию. Сдвиг за край галереи
// ничего не делает и возвращает moved=false.
func (uc *VenueImageUseCase) MoveImage(ctx context.Context, venueID, imageID string, req dto.MoveVenueImageRequest) ([]domain.VenueImage, bool, error) {
	if err := validator.Validate(req); err != nil {
		return nil, false, err
	}

	images, err := uc.ListImages(ctx, venueID)
	if err != nil {
		return nil, false, err
	}

	index := -1
	for i, img := range images {
		if img.ID == imageID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, false, errors.ErrNotFound.WithMessage("image not found")
	}

	target := index - 1
	if req.Direction == dto.MoveDown {
		target = index + 1
	}
	if target < 0 || target >= len(images) {
		return images, false, nil
	}

	ids := make([]string, len(images))
	for i, img := range images {
		ids[i] = img.ID
	}
	ids[index], ids[target] = ids[target], ids[index]

	reordered, err := uc.ReorderImages(ctx, venueID, dto.ReorderVenueImagesRequest{ImageIDs: ids})
	if err != nil {
		return nil, false, err
	}
	return reordered, true, nil
}

func firstDuplicate(ids []string) (string, bool) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return "", false
}

func isPermutation(ids []string, images []domain.VenueImage) bool {
	if len(ids) != len(images) {
		return false
	}
	known := make(map[string]struct{}, len(images))
	for _, img := range images {
		known[img.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return false
		}
	}
	return true
}
