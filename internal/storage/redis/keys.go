package redis

import (
	"fmt"

	"github.com/mhollis/gamewire/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "gamewire"

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// tokenIndexKey returns the Redis key for the api_key -> user_id index
func tokenIndexKey(token string) string {
	return fmt.Sprintf("%s:idx:token:%s", keyPrefix, token)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesByOwnerIndexKey returns the Redis key for the SET of a user's games
func gamesByOwnerIndexKey(ownerID model.UserID) string {
	return fmt.Sprintf("%s:idx:games_by_owner:%s", keyPrefix, ownerID)
}
