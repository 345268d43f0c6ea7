package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/venue-admin/internal/domain"
	"github.com/venue-admin/internal/domain/repository"
	"github.com/venue-admin/internal/querycache"
	"go.uber.org/zap"
)

// Mutation names a backend write whose success makes cached keys stale.
type Mutation string

const (
	MutationVenueUpdate         Mutation = "venue.update"
	MutationVenueStatus         Mutation = "venue.status"
	MutationVenueImage          Mutation = "venue.image"
	MutationVenueUnavailability Mutation = "venue.unavailability"
)

type dependent struct {
	key   func(venueID string) domain.QueryKey
	exact bool
}

// dependents lists, per mutation, the keys to invalidate after success.
// Mutations handled by a precise list merge only (users, venue create and
// delete) have no entry.
var dependents = map[Mutation][]dependent{
	// list row is merged in place; the detail and its nested lists refetch
	MutationVenueUpdate: {
		{key: domain.VenueKey},
	},
	MutationVenueStatus: {
		{key: domain.VenueKey, exact: true},
	},
	// thumbnail is derived from images, so the list row goes stale too
	MutationVenueImage: {
		{key: domain.VenueImagesKey, exact: true},
		{key: domain.VenueKey, exact: true},
		{key: func(string) domain.QueryKey { return domain.VenuesKey() }, exact: true},
	},
	MutationVenueUnavailability: {
		{key: domain.VenueUnavailabilitiesKey, exact: true},
		{key: domain.VenueKey, exact: true},
	},
}

// DependentKeys resolves the table for one mutation.
func DependentKeys(m Mutation, venueID string) []domain.QueryKey {
	deps := dependents[m]
	keys := make([]domain.QueryKey, 0, len(deps))
	for _, d := range deps {
		keys = append(keys, d.key(venueID))
	}
	return keys
}

// CacheSync applies the dependents table to the local cache and, when a
// publisher is configured, fans the invalidations out to other replicas.
type CacheSync struct {
	cache     *querycache.Cache
	publisher repository.InvalidationPublisher
	origin    string
	logger    *zap.Logger
}

// NewCacheSync - publisher may be nil when running a single replica.
func NewCacheSync(cache *querycache.Cache, publisher repository.InvalidationPublisher, logger *zap.Logger) *CacheSync {
	return &CacheSync{
		cache:     cache,
		publisher: publisher,
		origin:    uuid.NewString(),
		logger:    logger,
	}
}

// Origin identifies this replica in published events.
func (s *CacheSync) Origin() string {
	return s.origin
}

func (s *CacheSync) Cache() *querycache.Cache {
	return s.cache
}

// AfterMutation invalidates every key the table names for m.
func (s *CacheSync) AfterMutation(ctx context.Context, m Mutation, venueID string) {
	for _, d := range dependents[m] {
		s.invalidate(ctx, d.key(venueID), d.exact)
	}
}

// Remove drops key locally and asks other replicas to refetch it.
func (s *CacheSync) Remove(ctx context.Context, key domain.QueryKey) {
	s.cache.Remove(key)
	s.publish(ctx, key, false)
}

// Touch tells other replicas that key changed after a local precise write.
func (s *CacheSync) Touch(ctx context.Context, key domain.QueryKey) {
	s.publish(ctx, key, true)
}

func (s *CacheSync) invalidate(ctx context.Context, key domain.QueryKey, exact bool) {
	if exact {
		s.cache.InvalidateExact(key)
	} else {
		s.cache.Invalidate(key)
	}
	s.publish(ctx, key, exact)
}

func (s *CacheSync) publish(ctx context.Context, key domain.QueryKey, exact bool) {
	if s.publisher == nil {
		return
	}
	event := domain.InvalidationEvent{
		Origin: s.origin,
		Key:    key,
		Exact:  exact,
		At:     time.Now().UTC(),
	}
	// the mutation already succeeded; a lost event only delays other replicas
	if err := s.publisher.PublishInvalidation(ctx, event); err != nil {
		s.logger.Warn("Failed to publish invalidation",
			zap.Strings("key", key),
			zap.Error(err))
	}
}
