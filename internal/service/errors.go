package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrLoginOnServer       = errors.New("login on server failed")
	ErrSessionNotPersisted = errors.New("credentials accepted but session could not be persisted")
	ErrNotSignedIn         = errors.New("not signed in")
	ErrSessionExpired      = errors.New("session expired")
	ErrProfileNotRefreshed = errors.New("profile could not be refreshed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
