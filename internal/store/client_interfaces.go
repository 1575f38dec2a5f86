package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Persisted keys of the client. Each component owns a disjoint subset: the
// onboarding gate owns KeyHasSeenOnboarding, the session store owns
// KeyAuthToken and KeyAuthUser. The names are part of the on-disk format and
// must not change.
const (
	KeyHasSeenOnboarding = "@has_seen_onboarding"
	KeyAuthToken         = "@auth_token"
	KeyAuthUser          = "@auth_user"
)

// KeyValueStore is the persisted string key-value store of the client.
//
// Implementations must be safe for concurrent use. Removing an absent key
// is not an error.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key
	// is absent; err is non-nil only when the store could not be read.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key.
	Remove(ctx context.Context, key string) error
}
