package storage

import (
	"context"

	"github.com/mhollis/gamewire/internal/model"
)

// Storage defines the interface for data persistence. Two record families
// exist: users, and games with their embedded players and moves. Lookups
// that find nothing return the model not-found sentinel for their family.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByToken(ctx context.Context, token string) (*model.User, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGamesByOwner(ctx context.Context, ownerID model.UserID) ([]*model.Game, error)
}
