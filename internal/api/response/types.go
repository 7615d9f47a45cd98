package response

import (
	"time"

	"github.com/mhollis/gamewire/internal/model"
)

// User represents a user in API responses. The API key is returned only
// at registration.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	APIKey    string    `json:"apiKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserFromModel converts a model.User, including the API key
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		APIKey:    u.APIKey,
		CreatedAt: u.CreatedAt,
	}
}

// PublicUserFromModel converts a model.User, omitting the API key
func PublicUserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterResponse is the response for POST /auth/register
type RegisterResponse struct {
	User User `json:"user"`
}

// MeResponse is the response for GET /auth/me
type MeResponse struct {
	User User `json:"user"`
}

// Player represents a roster entry in API responses
type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:       string(p.ID),
		Name:     p.Name,
		JoinedAt: p.JoinedAt,
	}
}

// Move represents a move in API responses
type Move struct {
	ID        string         `json:"id"`
	PlayerID  string         `json:"playerId"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

// MoveFromModel converts a model.Move
func MoveFromModel(m model.Move) Move {
	return Move{
		ID:        string(m.ID),
		PlayerID:  string(m.PlayerID),
		Data:      m.Data,
		CreatedAt: m.CreatedAt,
	}
}

// Game represents a game in API responses
type Game struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	Status    string    `json:"status"`
	Players   []Player  `json:"players"`
	Moves     []Move    `json:"moves"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	players := make([]Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = PlayerFromModel(p)
	}
	moves := make([]Move, len(g.Moves))
	for i, m := range g.Moves {
		moves[i] = MoveFromModel(m)
	}
	return Game{
		ID:        string(g.ID),
		Name:      g.Name,
		OwnerID:   string(g.OwnerID),
		Status:    g.Status,
		Players:   players,
		Moves:     moves,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// GameResponse wraps a single game
type GameResponse struct {
	Game Game `json:"game"`
}

// GamesResponse is the response for GET /games
type GamesResponse struct {
	Count int    `json:"count"`
	Games []Game `json:"games"`
}

// GamesFromModel converts a slice of games
func GamesFromModel(games []*model.Game) GamesResponse {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return GamesResponse{Count: len(out), Games: out}
}

// PlayerResponse wraps a single player
type PlayerResponse struct {
	Player Player `json:"player"`
}

// PlayersResponse is the response for GET /games/{gameId}/players
type PlayersResponse struct {
	GameID  string   `json:"gameId"`
	Count   int      `json:"count"`
	Players []Player `json:"players"`
}

// PlayersFromModel converts a roster
func PlayersFromModel(gameID model.GameID, players []model.Player) PlayersResponse {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return PlayersResponse{GameID: string(gameID), Count: len(out), Players: out}
}

// MoveResponse wraps a single move
type MoveResponse struct {
	Move Move `json:"move"`
}

// MovesResponse is the response for GET /games/{gameId}/moves
type MovesResponse struct {
	GameID string `json:"gameId"`
	Count  int    `json:"count"`
	Moves  []Move `json:"moves"`
}

// MovesFromModel converts a move history
func MovesFromModel(gameID model.GameID, moves []model.Move) MovesResponse {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = MoveFromModel(m)
	}
	return MovesResponse{GameID: string(gameID), Count: len(out), Moves: out}
}

// DeletedResponse confirms a deletion
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}
