package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already taken")

	// Game errors
	ErrGameNotFound   = errors.New("game not found")
	ErrNotOwner       = errors.New("user is not the game owner")
	ErrNotParticipant = errors.New("user is not the owner or a player of the game")

	// Roster and move errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrMoveNotFound   = errors.New("move not found")
)
