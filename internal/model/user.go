package model

import "time"

// UserID uniquely identifies a registered user
type UserID string

// User represents a registered account. Users are created once at
// registration and are immutable afterwards.
type User struct {
	ID        UserID    `json:"id"`
	Username  string    `json:"username"`
	APIKey    string    `json:"apiKey"`
	CreatedAt time.Time `json:"createdAt"`
}
