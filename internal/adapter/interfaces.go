// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the Auth API.
//
// [AuthAPI] hides the transport from the service layer. The HTTP
// implementation ([NewHTTPAuthAPI]) maps every failure to one of the
// sentinel errors in errors.go so callers can use [errors.Is], and it
// sanitizes server supplied text so that no backend route or internal hint
// reaches the user. [UserMessage] turns those errors into short messages
// for the screens.
package adapter

import (
	"context"

	"github.com/MKhiriev/nurse-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_api_mock.go -package=mock

// AuthAPI is the Auth API as seen by the client.
type AuthAPI interface {
	// Login exchanges credentials for a bearer token and the user profile.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error)

	// Profile returns the profile of the account owning the bearer token.
	// An expired or unknown token reads as [ErrInvalidCredentials].
	Profile(ctx context.Context, token string) (models.UserProfile, error)

	// HealthCheck reports whether the server answered GET /health with 200
	// in time. It never fails; any problem reads as false.
	HealthCheck(ctx context.Context) bool
}
