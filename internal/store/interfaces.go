package store

import (
	"context"

	"github.com/MKhiriev/nurse-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts of the development Auth API.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// Returns [ErrEmailAlreadyExists] when the e-mail is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email.
	// Returns [ErrNoUserWasFound] when there is none.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given id.
	// Returns [ErrNoUserWasFound] when there is none.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}
