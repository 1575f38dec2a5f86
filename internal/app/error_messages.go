// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// development Auth API handlers and middleware.
//
// All Msg* constants are short message strings written into the "error"
// field of JSON response bodies. The client sanitizes and displays them, so
// they must never contain paths, hosts or internal identifiers.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing e-mail or password).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied e-mail/password
	// combination does not match any account.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgEmailAlreadyExists is returned when a registration attempt uses an
	// e-mail that is already taken.
	MsgEmailAlreadyExists = "email already exists"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnauthorized is returned when a protected route is called without a
	// usable Authorization header.
	MsgUnauthorized = "unauthorized"

	// MsgUserNotFound is returned when the owner of a valid token no longer
	// exists.
	MsgUserNotFound = "user not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
