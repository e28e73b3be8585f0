// Package model defines domain entities for the application.
package model

import "time"

// User is an identity record. The password hash and API key are never
// serialized; the key is handed out exactly once, through UserSummary.
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	APIKey       string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is the signup result shape: identity plus the freshly
// minted API key.
type UserSummary struct {
	Email     string    `json:"email"`
	APIKey    string    `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary returns the signup projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		Email:     u.Email,
		APIKey:    u.APIKey,
		CreatedAt: u.CreatedAt,
	}
}
