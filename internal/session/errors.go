package session

import "errors"

var (
	// ErrPersistSession is returned by Login when the token or the user
	// could not be written to the key-value store.
	ErrPersistSession = errors.New("session could not be persisted")

	// ErrNotAuthenticated is returned by UpdateUser when there is no
	// session to update.
	ErrNotAuthenticated = errors.New("session is not authenticated")

	// ErrUserMismatch is returned by UpdateUser when the profile belongs to
	// another account than the session.
	ErrUserMismatch = errors.New("profile does not belong to the session user")

	// ErrNoProvider is the panic value of [Use] when ctx carries no store.
	ErrNoProvider = errors.New("session.Use must be called within a context returned by session.Provide")
)
