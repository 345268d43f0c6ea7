package domain

import "strings"

// QueryKey identifies a cached resource, e.g. ["venues", id, "images"].
type QueryKey []string

const (
	KeyUsers            = "users"
	KeyScopes           = "scopes"
	KeyVenues           = "venues"
	KeyImages           = "images"
	KeyUnavailabilities = "unavailabilities"
)

func UsersKey() QueryKey  { return QueryKey{KeyUsers} }
func ScopesKey() QueryKey { return QueryKey{KeyScopes} }
func VenuesKey() QueryKey { return QueryKey{KeyVenues} }

func VenueKey(id string) QueryKey {
	return QueryKey{KeyVenues, id}
}

func VenueImagesKey(venueID string) QueryKey {
	return QueryKey{KeyVenues, venueID, KeyImages}
}

func VenueUnavailabilitiesKey(venueID string) QueryKey {
	return QueryKey{KeyVenues, venueID, KeyUnavailabilities}
}

// String is the map key used by the cache. Segments are joined with a unit
// separator so "a/b" and ["a","b"] never collide.
func (k QueryKey) String() string {
	return strings.Join(k, "\x1f")
}

// HasPrefix reports whether k starts with every segment of prefix.
func (k QueryKey) HasPrefix(prefix QueryKey) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

func (k QueryKey) Equal(other QueryKey) bool {
	return len(k) == len(other) && k.HasPrefix(other)
}

// ParseQueryKey reverses String.
func ParseQueryKey(s string) QueryKey {
	if s == "" {
		return QueryKey{}
	}
	return QueryKey(strings.Split(s, "\x1f"))
}
