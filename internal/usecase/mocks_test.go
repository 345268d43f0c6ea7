package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/querycache"
	"github.com/venue-admin/internal/usecase"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListScopes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateScopes(ctx context.Context, id string, scopes []string) ([]string, error) {
	args := m.Called(ctx, id, scopes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockVenueRepository is a mock of VenueRepository
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) ListVenues(ctx context.Context) ([]domain.VenueListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VenueListItem), args.Error(1)
}

func (m *MockVenueRepository) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) CreateVenue(ctx context.Context, in domain.VenueCreate) (*domain.Venue, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) UpdateVenue(ctx context.Context, id string, patch domain.VenuePatch) (*domain.Venue, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) DeleteVenue(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVenueRepository) UpdateVenueStatus(ctx context.Context, id string, status domain.VenueStatus) (*domain.VenueStatusUpdate, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueStatusUpdate), args.Error(1)
}

// MockVenueImageRepository is a mock of VenueImageRepository
type MockVenueImageRepository struct {
	mock.Mock
}

func (m *MockVenueImageRepository) ListImages(ctx context.Context, venueID string) ([]domain.VenueImage, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VenueImage), args.Error(1)
}

func (m *MockVenueImageRepository) AddImage(ctx context.Context, venueID string, in domain.VenueImageCreate) (*domain.VenueImage, error) {
	args := m.Called(ctx, venueID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueImage), args.Error(1)
}

func (m *MockVenueImageRepository) UpdateImage(ctx context.Context, venueID, imageID string, in domain.VenueImageUpdate) (*domain.VenueImage, error) {
	args := m.Called(ctx, venueID, imageID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueImage), args.Error(1)
}

func (m *MockVenueImageRepository) DeleteImage(ctx context.Context, venueID, imageID string) error {
	args := m.Called(ctx, venueID, imageID)
	return args.Error(0)
}

func (m *MockVenueImageRepository) ReorderImages(ctx context.Context, venueID string, imageIDs []string) ([]domain.VenueImage, error) {
	args := m.Called(ctx, venueID, imageIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VenueImage), args.Error(1)
}

// MockVenueUnavailabilityRepository is a mock of VenueUnavailabilityRepository
type MockVenueUnavailabilityRepository struct {
	mock.Mock
}

func (m *MockVenueUnavailabilityRepository) ListUnavailabilities(ctx context.Context, venueID string) ([]domain.VenueUnavailability, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VenueUnavailability), args.Error(1)
}

func (m *MockVenueUnavailabilityRepository) CreateUnavailability(ctx context.Context, venueID string, in domain.VenueUnavailabilityInput) (*domain.VenueUnavailability, error) {
	args := m.Called(ctx, venueID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueUnavailability), args.Error(1)
}

func (m *MockVenueUnavailabilityRepository) UpdateUnavailability(ctx context.Context, venueID, unavailabilityID string, in domain.VenueUnavailabilityInput) (*domain.VenueUnavailability, error) {
	args := m.Called(ctx, venueID, unavailabilityID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueUnavailability), args.Error(1)
}

func (m *MockVenueUnavailabilityRepository) DeleteUnavailability(ctx context.Context, venueID, unavailabilityID string) error {
	args := m.Called(ctx, venueID, unavailabilityID)
	return args.Error(0)
}

// MockInvalidationPublisher is a mock of InvalidationPublisher
type MockInvalidationPublisher struct {
	mock.Mock
}

func (m *MockInvalidationPublisher) PublishInvalidation(ctx context.Context, event domain.InvalidationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newCacheSync() (*usecase.CacheSync, *querycache.Cache) {
	cache := querycache.New(zap.NewNop())
	return usecase.NewCacheSync(cache, nil, zap.NewNop()), cache
}

func ptrString(s string) *string { return &s }
func ptrBool(b bool) *bool       { return &b }
func ptrInt(i int) *int          { return &i }
