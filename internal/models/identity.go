package models

// Identity is the read-only projection of the session token's claims.
type Identity struct {
	UserID string
	Name   string
}
