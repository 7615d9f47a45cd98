package memory

import (
	"context"
	"sync"

	"github.com/mhollis/gamewire/internal/model"
	"github.com/mhollis/gamewire/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are copied on save and on read, so callers never share a
// pointer with the stored record or with each other.
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	tokenIndex    map[string]model.UserID
	games         map[model.GameID]*model.Game
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		tokenIndex:    make(map[string]model.UserID),
		games:         make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func copyUser(u *model.User) *model.User {
	out := *u
	return &out
}

func copyGame(g *model.Game) *model.Game {
	out := *g
	out.Players = append([]model.Player(nil), g.Players...)
	out.Moves = make([]model.Move, len(g.Moves))
	for i, m := range g.Moves {
		out.Moves[i] = m
		if m.Data != nil {
			data := make(map[string]any, len(m.Data))
			for k, v := range m.Data {
				data[k] = v
			}
			out.Moves[i].Data = data
		}
	}
	return &out
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = copyUser(user)
	s.usernameIndex[user.Username] = user.ID
	s.tokenIndex[user.APIKey] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (s *Storage) GetUserByToken(ctx context.Context, token string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.tokenIndex[token]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return copyUser(user), nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = copyGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return copyGame(game), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) ListGamesByOwner(ctx context.Context, ownerID model.UserID) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var games []*model.Game
	for _, game := range s.games {
		if game.OwnerID == ownerID {
			games = append(games, copyGame(game))
		}
	}
	return games, nil
}
