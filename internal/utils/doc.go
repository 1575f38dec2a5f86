// Package utils holds small helpers shared by the client and the
// development Auth API: the resty HTTP client, JSON response writing,
// bcrypt password hashing, JWT issuing and UUID generation.
package utils
