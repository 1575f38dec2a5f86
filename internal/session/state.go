package session

import "github.com/MKhiriev/nurse-notes/models"

// AuthState is the tri-state authentication status.
type AuthState int8

const (
	// StateUnknown is held from construction until RestoreSession resolves.
	StateUnknown AuthState = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable copy of the session.
//
//   - StateUnknown implies Loading.
//   - StateAuthenticated implies User != nil.
//   - StateUnauthenticated implies User == nil.
type Snapshot struct {
	State   AuthState
	User    *models.UserProfile
	Loading bool
}

// IsAuthenticated reports the authentication flag and whether it is known.
func (s Snapshot) IsAuthenticated() (authenticated, known bool) {
	return s.State == StateAuthenticated, s.State != StateUnknown
}

// Equal compares two snapshots by value, including the user profile.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.State != other.State || s.Loading != other.Loading {
		return false
	}
	if s.User == nil || other.User == nil {
		return s.User == other.User
	}
	return *s.User == *other.User
}

func unknown() Snapshot {
	return Snapshot{State: StateUnknown, Loading: true}
}

func authenticated(user models.UserProfile) Snapshot {
	return Snapshot{State: StateAuthenticated, User: &user}
}

func unauthenticated() Snapshot {
	return Snapshot{State: StateUnauthenticated}
}
