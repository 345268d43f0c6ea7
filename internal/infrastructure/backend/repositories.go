package backend

import "github.com/venue-admin/internal/domain/repository"

var (
	_ repository.UserRepository                = (*Client)(nil)
	_ repository.VenueRepository               = (*Client)(nil)
	_ repository.VenueImageRepository          = (*Client)(nil)
	_ repository.VenueUnavailabilityRepository = (*Client)(nil)
)
