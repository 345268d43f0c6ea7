package usecase

import (
	"context"
	"math"
	"strconv"

	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/usecase/dto"
	"go.uber.org/zap"
)

// StatsUseCase считает карточки статистики по закешированным спискам
type StatsUseCase struct {
	users  *UserUseCase
	venues *VenueUseCase
	logger *zap.Logger
}

func NewStatsUseCase(users *UserUseCase, venues *VenueUseCase, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		users:  users,
		venues: venues,
		logger: logger,
	}
}

func (uc *StatsUseCase) UserStats(ctx context.Context) (*dto.UserStats, error) {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.UserStats{Total: len(users)}
	for _, u := range users {
		if u.IsActive {
			stats.Active++
		}
	}
	stats.Inactive = stats.Total - stats.Active
	return stats, nil
}

// VenueStats - средний рейтинг округляется до одного знака, 0 для пустого
// списка. Нечисловые рейтинги пропускаются.
func (uc *StatsUseCase) VenueStats(ctx context.Context) (*dto.VenueStats, error) {
	venues, err := uc.venues.ListVenues(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.VenueStats{Total: len(venues)}
	var sum float64
	var rated int
	for _, v := range venues {
		switch v.Status {
		case domain.VenueStatusActive:
			stats.Active++
		case domain.VenueStatusPendingApproval:
			stats.PendingApproval++
		}
		if v.IsIndoor {
			stats.Indoor++
		} else {
			stats.Outdoor++
		}

		rating, err := strconv.ParseFloat(v.Rating, 64)
		if err != nil {
			uc.logger.Debug("Skipping non-numeric rating", zap.String("venue_id", v.ID), zap.String("rating", v.Rating))
			continue
		}
		sum += rating
		rated++
	}
	if rated > 0 {
		stats.AverageRating = math.Round(sum/float64(rated)*10) / 10
	}
	return stats, nil
}
