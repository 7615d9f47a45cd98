package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// UpdateGameRequest is the request body for updating a game.
// Absent fields are left unchanged.
type UpdateGameRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Status *string `json:"status,omitempty" validate:"omitempty,min=1"`
}

// AddPlayerRequest is the request body for adding a player to a game
type AddPlayerRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// AddMoveRequest is the request body for recording a move
type AddMoveRequest struct {
	PlayerID string         `json:"playerId" validate:"required"`
	Data     map[string]any `json:"data" validate:"required"`
}
