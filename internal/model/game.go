package model

import "time"

// GameID uniquely identifies a game
type GameID string

// PlayerID uniquely identifies a player within a game
type PlayerID string

// MoveID uniquely identifies a move within a game
type MoveID string

// GameStatusActive is the status assigned to newly created games
const GameStatusActive = "active"

// Player is a roster entry owned by its parent game. Player names carry
// no uniqueness constraint.
type Player struct {
	ID       PlayerID  `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Move is an append-only record of a turn taken in a game. The payload is
// opaque to the server and stored as-is.
type Move struct {
	ID        MoveID         `json:"id"`
	PlayerID  PlayerID       `json:"playerId"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Game is the root record for a single game, embedding its roster and
// move history. OwnerID is immutable after creation.
type Game struct {
	ID        GameID    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   UserID    `json:"ownerId"`
	Status    string    `json:"status"`
	Players   []Player  `json:"players"`
	Moves     []Move    `json:"moves"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsOwner reports whether the given user owns this game.
func (g *Game) IsOwner(userID UserID) bool {
	return g.OwnerID == userID
}

// IsParticipant reports whether the given user is the game's owner or
// appears in its player roster. The owner is implicitly a participant
// whether or not they appear in the roster.
func (g *Game) IsParticipant(userID UserID) bool {
	if g.IsOwner(userID) {
		return true
	}
	for _, p := range g.Players {
		if p.ID == PlayerID(userID) {
			return true
		}
	}
	return false
}

// GetPlayer returns the roster entry with the given ID, or nil if absent.
func (g *Game) GetPlayer(playerID PlayerID) *Player {
	for i := range g.Players {
		if g.Players[i].ID == playerID {
			return &g.Players[i]
		}
	}
	return nil
}

// GetMove returns the move with the given ID, or nil if absent.
func (g *Game) GetMove(moveID MoveID) *Move {
	for i := range g.Moves {
		if g.Moves[i].ID == moveID {
			return &g.Moves[i]
		}
	}
	return nil
}
