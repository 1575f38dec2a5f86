package adapter

import "errors"

var (
	ErrInvalidServerResponse = errors.New("invalid server response")
	ErrServerUnreachable     = errors.New("cannot reach server")
	ErrBadRequest            = errors.New("bad request")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrServerError           = errors.New("server error")
	ErrUnexpectedStatus      = errors.New("unexpected server status")
)
