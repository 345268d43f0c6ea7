package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-admin/internal/domain"
	apperrors "github.com/venue-admin/internal/pkg/errors"
	"github.com/venue-admin/internal/pkg/formdiff"
	"github.com/venue-admin/internal/querycache"
	"github.com/venue-admin/internal/usecase"
	"github.com/venue-admin/internal/usecase/dto"
)

func seedVenue() *domain.Venue {
	return &domain.Venue{
		ID:           "v1",
		Name:         "Arena One",
		Description:  "Indoor football arena downtown",
		SportTypes:   []domain.SportType{domain.SportFootball},
		Address:      "1 Main St",
		City:         "Madrid",
		Latitude:     ptrString("40.4168"),
		Longitude:    ptrString("-3.7038"),
		PricePerHour: "50.00",
		Currency:     "EUR",
		Capacity:     20,
		IsIndoor:     true,
		Amenities:    []string{"wifi"},
		WorkingHours: domain.WorkingHours{
			domain.DayMonday: {Open: "09:00", Close: "18:00"},
		},
		Status: domain.VenueStatusActive,
		Rating: "4.50",
		Images: []domain.VenueImage{
			{ID: "i1", VenueID: "v1", URL: "https://cdn.example.com/a.jpg", IsThumbnail: true},
		},
	}
}

func seedVenueList() []domain.VenueListItem {
	return []domain.VenueListItem{
		seedVenue().ListItem(),
		{ID: "v2", Name: "Court Two", City: "Lisbon", Status: domain.VenueStatusPendingApproval, PricePerHour: "30.00", Currency: "EUR", Capacity: 4, Rating: "3.00"},
	}
}

// formFromVenue fills the edit form the way the dashboard does on open.
func formFromVenue(v *domain.Venue) dto.EditVenueRequest {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return dto.EditVenueRequest{
		Name:               v.Name,
		Description:        v.Description,
		SportTypes:         v.SportTypes,
		Address:            v.Address,
		City:               v.City,
		Latitude:           deref(v.Latitude),
		Longitude:          deref(v.Longitude),
		PricePerHour:       v.PricePerHour,
		Currency:           v.Currency,
		Capacity:           ptrInt(v.Capacity),
		IsIndoor:           ptrBool(v.IsIndoor),
		HasParking:         ptrBool(v.HasParking),
		HasChangingRooms:   ptrBool(v.HasChangingRooms),
		HasShowers:         ptrBool(v.HasShowers),
		HasEquipmentRental: ptrBool(v.HasEquipmentRental),
		Amenities:          v.Amenities,
		WorkingHours:       formdiff.ToFormWorkingHours(v.WorkingHours),
	}
}

// newVenueUseCase returns a use case with the list and the v1 detail cached.
func newVenueUseCase(t *testing.T) (*usecase.VenueUseCase, *MockVenueRepository, *querycache.Cache) {
	t.Helper()
	ctx := context.Background()
	repo := &MockVenueRepository{}
	sync, cache := newCacheSync()
	uc := usecase.NewVenueUseCase(repo, sync, zap.NewNop())

	repo.On("ListVenues", mock.Anything).Return(seedVenueList(), nil).Once()
	repo.On("GetVenue", mock.Anything, "v1").Return(seedVenue(), nil).Once()
	_, err := uc.ListVenues(ctx)
	require.NoError(t, err)
	_, err = uc.GetVenue(ctx, "v1")
	require.NoError(t, err)

	return uc, repo, cache
}

func TestVenueUseCase_GetVenueRequiresID(t *testing.T) {
	repo := &MockVenueRepository{}
	sync, _ := newCacheSync()
	uc := usecase.NewVenueUseCase(repo, sync, zap.NewNop())

	_, err := uc.GetVenue(context.Background(), "")
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_REQUEST", appErr.Code)
	repo.AssertNotCalled(t, "GetVenue", mock.Anything, mock.Anything)
}

func TestVenueUseCase_CreateVenue(t *testing.T) {
	ctx := context.Background()
	uc, repo, cache := newVenueUseCase(t)

	created := &domain.Venue{
		ID:           "v9",
		Name:         "New Court",
		City:         "Porto",
		Status:       domain.VenueStatusPendingApproval,
		PricePerHour: "25.00",
		Currency:     "EUR",
		Capacity:     4,
		Images: []domain.VenueImage{
			{ID: "i7", URL: "https://cdn.example.com/b.jpg"},
			{ID: "i8", URL: "https://cdn.example.com/c.jpg", IsThumbnail: true},
		},
	}
	repo.On("CreateVenue", mock.Anything, mock.MatchedBy(func(in domain.VenueCreate) bool {
		return in.Name == "New Court" && in.Latitude == nil && in.Amenities != nil &&
			in.WorkingHours[domain.DayFriday] == domain.DayHours{Open: "10:00", Close: "22:00"}
	})).Return(created, nil)

	venue, err := uc.CreateVenue(ctx, dto.CreateVenueRequest{
		Name:         "New Court",
		Description:  "Padel court near the river",
		SportTypes:   []domain.SportType{domain.SportPadel},
		Address:      "2 River Rd",
		City:         "Porto",
		PricePerHour: "25.00",
		Currency:     "EUR",
		Capacity:     4,
		WorkingHours: map[string]formdiff.TimeSlot{
			domain.DayFriday: {Enabled: true, Open: "10:00", Close: "22:00"},
			domain.DayMonday: {Enabled: false, Open: "08:00", Close: "20:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "v9", venue.ID)

	venues, err := uc.ListVenues(ctx)
	require.NoError(t, err)
	require.Len(t, venues, 3)
	assert.Equal(t, "v9", venues[0].ID)
	require.NotNil(t, venues[0].Thumbnail)
	assert.Equal(t, "https://cdn.example.com/c.jpg", *venues[0].Thumbnail)

	detail, ok := querycache.GetAs[*domain.Venue](cache, domain.VenueKey("v9"))
	require.True(t, ok)
	assert.Equal(t, "New Court", detail.Name)
}

func TestVenueUseCase_EditVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("only the price changed", func(t *testing.T) {
		uc, repo, cache := newVenueUseCase(t)

		updated := seedVenue()
		updated.PricePerHour = "60.00"
		repo.On("UpdateVenue", mock.Anything, "v1", domain.VenuePatch{"price_per_hour": "60.00"}).
			Return(updated, nil)

		form := formFromVenue(seedVenue())
		form.PricePerHour = "60.00"

		res, err := uc.EditVenue(ctx, "v1", form)
		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Equal(t, []string{"price_per_hour"}, res.Fields)
		repo.AssertExpectations(t)

		venues, ok := querycache.GetAs[[]domain.VenueListItem](cache, domain.VenuesKey())
		require.True(t, ok)
		assert.Equal(t, "60.00", venues[0].PricePerHour)
		assert.Equal(t, seedVenueList()[1], venues[1])
		assert.True(t, cache.Peek(domain.VenueKey("v1")).Stale)
	})

	t.Run("last open day switched off sends null hours", func(t *testing.T) {
		uc, repo, _ := newVenueUseCase(t)

		repo.On("UpdateVenue", mock.Anything, "v1", mock.MatchedBy(func(p domain.VenuePatch) bool {
			raw, err := json.Marshal(p)
			return err == nil && string(raw) == `{"working_hours":null}`
		})).Return(seedVenue(), nil)

		form := formFromVenue(seedVenue())
		monday := form.WorkingHours[domain.DayMonday]
		monday.Enabled = false
		form.WorkingHours[domain.DayMonday] = monday

		res, err := uc.EditVenue(ctx, "v1", form)
		require.NoError(t, err)
		assert.Equal(t, []string{"working_hours"}, res.Fields)
		repo.AssertExpectations(t)
	})

	t.Run("unchanged form sends nothing", func(t *testing.T) {
		uc, repo, _ := newVenueUseCase(t)

		res, err := uc.EditVenue(ctx, "v1", formFromVenue(seedVenue()))
		require.NoError(t, err)
		assert.False(t, res.Changed)
		repo.AssertNotCalled(t, "UpdateVenue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("falls back to the list row", func(t *testing.T) {
		repo := &MockVenueRepository{}
		sync, _ := newCacheSync()
		uc := usecase.NewVenueUseCase(repo, sync, zap.NewNop())

		repo.On("GetVenue", mock.Anything, "v2").Return(nil, apperrors.ErrBackend)
		repo.On("ListVenues", mock.Anything).Return(seedVenueList(), nil)
		repo.On("UpdateVenue", mock.Anything, "v2", domain.VenuePatch{"name": "Court Three"}).
			Return(&domain.Venue{ID: "v2", Name: "Court Three"}, nil)

		res, err := uc.EditVenue(ctx, "v2", dto.EditVenueRequest{
			Name:         "Court Three",
			City:         "Lisbon",
			PricePerHour: "30.00",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"name"}, res.Fields)
		repo.AssertExpectations(t)
	})
}

func TestVenueUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("same status is a no-op", func(t *testing.T) {
		uc, repo, _ := newVenueUseCase(t)

		res, err := uc.UpdateStatus(ctx, "v1", dto.UpdateVenueStatusRequest{Status: domain.VenueStatusActive})
		require.NoError(t, err)
		assert.False(t, res.Changed)
		repo.AssertNotCalled(t, "UpdateVenueStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("new status merged into the row", func(t *testing.T) {
		uc, repo, cache := newVenueUseCase(t)
		repo.On("UpdateVenueStatus", mock.Anything, "v1", domain.VenueStatusMaintenance).
			Return(&domain.VenueStatusUpdate{Status: domain.VenueStatusMaintenance}, nil)

		res, err := uc.UpdateStatus(ctx, "v1", dto.UpdateVenueStatusRequest{Status: domain.VenueStatusMaintenance})
		require.NoError(t, err)
		assert.True(t, res.Changed)

		venues, ok := querycache.GetAs[[]domain.VenueListItem](cache, domain.VenuesKey())
		require.True(t, ok)
		assert.Equal(t, domain.VenueStatusMaintenance, venues[0].Status)
		assert.Equal(t, domain.VenueStatusPendingApproval, venues[1].Status)
		assert.True(t, cache.Peek(domain.VenueKey("v1")).Stale)
		assert.False(t, cache.Peek(domain.VenuesKey()).Stale)
	})

	t.Run("stale cached status is not trusted", func(t *testing.T) {
		uc, repo, cache := newVenueUseCase(t)
		// другая реплика сменила статус и разослала инвалидацию
		cache.Invalidate(domain.VenuesKey())
		cache.Invalidate(domain.VenueKey("v1"))
		repo.On("UpdateVenueStatus", mock.Anything, "v1", domain.VenueStatusActive).
			Return(&domain.VenueStatusUpdate{Status: domain.VenueStatusActive}, nil)

		res, err := uc.UpdateStatus(ctx, "v1", dto.UpdateVenueStatusRequest{Status: domain.VenueStatusActive})
		require.NoError(t, err)
		assert.True(t, res.Changed)
		repo.AssertExpectations(t)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		uc, _, _ := newVenueUseCase(t)

		_, err := uc.UpdateStatus(ctx, "v1", dto.UpdateVenueStatusRequest{Status: "closed"})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_FAILED", appErr.Code)
	})
}

func TestVenueUseCase_DeleteVenue(t *testing.T) {
	ctx := context.Background()
	uc, repo, cache := newVenueUseCase(t)
	cache.Write(domain.VenueImagesKey("v1"), func(interface{}) interface{} { return []domain.VenueImage{} })

	repo.On("DeleteVenue", mock.Anything, "v1").Return(nil)

	require.NoError(t, uc.DeleteVenue(ctx, "v1"))

	venues, err := uc.ListVenues(ctx)
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "v2", venues[0].ID)
	assert.True(t, cache.Peek(domain.VenueKey("v1")).IsLoading())
	assert.True(t, cache.Peek(domain.VenueImagesKey("v1")).IsLoading())
}
