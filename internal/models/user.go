// Package models defines the typed records exchanged with the skill-sharing
// backend. IDs are server-assigned and immutable.
package models

// User is a platform account managed from the admin client.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Role   string `json:"role"`
}

func (u User) Key() string { return u.ID }
