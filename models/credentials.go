package models

// Credentials is the request body of the Auth API login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
