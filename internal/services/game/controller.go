package game

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mhollis/gamewire/internal/dependencies/clock"
	"github.com/mhollis/gamewire/internal/model"
	"github.com/mhollis/gamewire/internal/storage"
)

// Controller manages games, their rosters, and their move history. Every
// protected operation enforces exactly one of the two authorization
// predicates: owner-only, or owner-or-player.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	// mu serializes the game record family's read-modify-write cycles.
	// Each mutation loads the whole record, mutates it in memory, and
	// saves the whole record back; interleaved cycles would let the
	// later save drop the earlier one's changes.
	mu sync.Mutex
}

// NewController creates a new game Controller
func NewController(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clk,
		logger:  logger.With(slog.String("component", "game")),
	}
}

// UpdateParams holds the optional fields of a game update. Nil fields are
// left untouched.
type UpdateParams struct {
	Name   *string
	Status *string
}

// CreateGame creates a game owned by the given user.
func (c *Controller) CreateGame(ctx context.Context, ownerID model.UserID, name string) (*model.Game, error) {
	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(uuid.NewString()),
		Name:      name,
		OwnerID:   ownerID,
		Status:    model.GameStatusActive,
		Players:   []model.Player{},
		Moves:     []model.Move{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("owner_id", string(ownerID)))

	return game, nil
}

// ListGames returns the games owned by the given user, oldest first.
func (c *Controller) ListGames(ctx context.Context, ownerID model.UserID) ([]*model.Game, error) {
	games, err := c.storage.ListGamesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
	return games, nil
}

// GetGame returns a game. Only the owner may read a game directly.
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error) {
	return c.ownedGame(ctx, gameID, userID)
}

// UpdateGame merges the provided fields into a game and refreshes its
// updated timestamp. Owner only.
func (c *Controller) UpdateGame(ctx context.Context, gameID model.GameID, userID model.UserID, params UpdateParams) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.ownedGame(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		game.Name = *params.Name
	}
	if params.Status != nil {
		game.Status = *params.Status
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteGame removes a game. Owner only.
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID, userID model.UserID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.ownedGame(ctx, gameID, userID); err != nil {
		return err
	}

	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// AddPlayer appends a player to a game's roster. Owner only.
func (c *Controller) AddPlayer(ctx context.Context, gameID model.GameID, userID model.UserID, name string) (*model.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.ownedGame(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}

	player := model.Player{
		ID:       model.PlayerID(uuid.NewString()),
		Name:     name,
		JoinedAt: c.clock.Now(),
	}
	game.Players = append(game.Players, player)
	game.UpdatedAt = player.JoinedAt

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return &player, nil
}

// RemovePlayer removes a roster entry by ID. Owner only.
func (c *Controller) RemovePlayer(ctx context.Context, gameID model.GameID, userID model.UserID, playerID model.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.ownedGame(ctx, gameID, userID)
	if err != nil {
		return err
	}

	found := false
	kept := game.Players[:0]
	for _, p := range game.Players {
		if p.ID == playerID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return model.ErrPlayerNotFound
	}
	game.Players = kept
	game.UpdatedAt = c.clock.Now()

	return c.storage.SaveGame(ctx, game)
}

// ListPlayers returns a game's roster. Owner only.
func (c *Controller) ListPlayers(ctx context.Context, gameID model.GameID, userID model.UserID) ([]model.Player, error) {
	game, err := c.ownedGame(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}
	return game.Players, nil
}

// AddMove appends a move to a game. Owner or player; the move must
// reference a player currently on the roster. Moves are immutable once
// recorded.
func (c *Controller) AddMove(ctx context.Context, gameID model.GameID, userID model.UserID, playerID model.PlayerID, data map[string]any) (*model.Move, *model.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.participantGame(ctx, gameID, userID)
	if err != nil {
		return nil, nil, err
	}

	player := game.GetPlayer(playerID)
	if player == nil {
		return nil, nil, model.ErrPlayerNotFound
	}

	move := model.Move{
		ID:        model.MoveID(uuid.NewString()),
		PlayerID:  playerID,
		Data:      data,
		CreatedAt: c.clock.Now(),
	}
	game.Moves = append(game.Moves, move)
	game.UpdatedAt = move.CreatedAt

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, nil, err
	}
	return &move, player, nil
}

// ListMoves returns a game's moves in submission order. Owner or player.
func (c *Controller) ListMoves(ctx context.Context, gameID model.GameID, userID model.UserID) ([]model.Move, error) {
	game, err := c.participantGame(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}
	return game.Moves, nil
}

// GetMove returns a single move by ID. Owner only; single-move lookup is
// intentionally stricter than listing.
func (c *Controller) GetMove(ctx context.Context, gameID model.GameID, userID model.UserID, moveID model.MoveID) (*model.Move, error) {
	game, err := c.ownedGame(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}

	move := game.GetMove(moveID)
	if move == nil {
		return nil, model.ErrMoveNotFound
	}
	return move, nil
}

// ownedGame fetches a game and requires the user to be its owner.
func (c *Controller) ownedGame(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsOwner(userID) {
		return nil, model.ErrNotOwner
	}
	return game, nil
}

// participantGame fetches a game and requires the user to be its owner or
// one of its players.
func (c *Controller) participantGame(ctx context.Context, gameID model.GameID, userID model.UserID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsParticipant(userID) {
		return nil, model.ErrNotParticipant
	}
	return game, nil
}
