// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserProfile is the public view of a nurse account returned by the Auth API
// and persisted by the client session store under the auth user key.
//
// The session core only relies on ID being present; every other field is
// echoed back to the screens unchanged.
type UserProfile struct {
	// ID is the unique identifier of the account.
	ID string `json:"id"`

	// Email is the login e-mail of the account.
	Email string `json:"email"`

	// FullName is the display name shown on the profile tab.
	FullName string `json:"full_name,omitempty"`

	// Role is the clinical role of the account (e.g. "nurse", "charge_nurse").
	Role string `json:"role,omitempty"`
}

// User is the server-side account record of the development Auth API.
// PasswordHash must never leave the server.
type User struct {
	// UserID is the UUID primary key of the account.
	UserID string `json:"id"`

	// Email is unique across all accounts.
	Email string `json:"email"`

	// FullName is the display name of the account.
	FullName string `json:"full_name"`

	// Role is the clinical role of the account.
	Role string `json:"role"`

	// Password is the plaintext password received on registration. It is
	// hashed before storage and is never persisted or serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with [User].
func (u User) TableName() string {
	return "users"
}

// Profile returns the public projection of u.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:       u.UserID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
