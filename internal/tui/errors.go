// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/nurse-notes/internal/adapter"
	"github.com/MKhiriev/nurse-notes/internal/service"
)

// humanizeError turns a sign-in error into the inline message of the login
// screen. Raw error text is never shown.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Enter a valid email address and password."
	case errors.Is(err, service.ErrSessionNotPersisted):
		return "Signed in, but the session could not be saved on this device. Please try again."
	default:
		return adapter.UserMessage(err)
	}
}
