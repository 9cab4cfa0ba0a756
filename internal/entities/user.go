// Package entities contains core business entities.
package entities

// User is the identity principal owning teams.
type User struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string
}

// Principal is the authenticated caller resolved from a session token.
type Principal struct {
	ID   string
	Name string
}
