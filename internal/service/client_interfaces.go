package service

import (
	"context"

	"github.com/MKhiriev/nurse-notes/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is what the screens use to sign in and out.
type ClientAuthService interface {
	// SignIn validates the credentials locally, exchanges them with the Auth
	// API and persists the resulting session. Errors wrap
	// [ErrInvalidDataProvided], [ErrLoginOnServer] (together with the
	// adapter error) or [ErrSessionNotPersisted].
	SignIn(ctx context.Context, credentials models.Credentials) (models.UserProfile, error)

	// SignOut ends the session. It always succeeds.
	SignOut(ctx context.Context) error

	// RefreshProfile fetches the signed-in user's profile with the session
	// token and stores it in the session. A rejected token ends the session
	// and returns [ErrSessionExpired]; other failures wrap
	// [ErrProfileNotRefreshed] and keep the session as it was. Without a
	// session it returns [ErrNotSignedIn].
	RefreshProfile(ctx context.Context) (models.UserProfile, error)

	// ServerAvailable reports whether the Auth API answers its health check.
	ServerAvailable(ctx context.Context) bool
}
