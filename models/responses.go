package models

// LoginResponse is the body returned by POST /api/auth/login.
//
// A response is only trusted when OK is true; the client treats anything else
// as an invalid server response regardless of the HTTP status.
type LoginResponse struct {
	// OK reports whether the server accepted the credentials.
	OK bool `json:"ok"`

	// Token is the opaque bearer token of the new session.
	Token string `json:"token,omitempty"`

	// User is the profile of the authenticated account.
	User *UserProfile `json:"user,omitempty"`

	// Error carries a short human-readable failure reason when OK is false.
	Error string `json:"error,omitempty"`
}

// LoginResult is what the client adapter hands to the service layer after a
// successful login.
type LoginResult struct {
	Token string
	User  UserProfile
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
