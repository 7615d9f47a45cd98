package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mhollis/gamewire/internal/model"
	"github.com/mhollis/gamewire/internal/storage"
)

const (
	usersFile = "users.json"
	gamesFile = "games.json"
)

// Storage is a flat-file implementation of the storage interface. Each
// record family lives in a single JSON array file; every operation reads
// the whole file, mutates in memory, and rewrites the whole file. A
// per-family mutex makes each read-modify-write cycle atomic relative to
// other goroutines.
type Storage struct {
	dir string

	usersMu sync.Mutex
	gamesMu sync.Mutex
}

// New creates a jsonfile storage rooted at dir, creating it if needed.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// readCollection unmarshals the named file into out. A missing file is an
// empty collection, not an error.
func (s *Storage) readCollection(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// writeCollection rewrites the named file with the full collection. The
// write goes to a temp file first and is renamed into place so readers
// never observe a torn file.
func (s *Storage) writeCollection(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}

func (s *Storage) readUsers() ([]*model.User, error) {
	var users []*model.User
	if err := s.readCollection(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Storage) readGames() ([]*model.Game, error) {
	var games []*model.Game
	if err := s.readCollection(gamesFile, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return err
	}

	replaced := false
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, user)
	}

	return s.writeCollection(usersFile, users)
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	return s.findUser(func(u *model.User) bool { return u.ID == id })
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	return s.findUser(func(u *model.User) bool { return u.Username == username })
}

func (s *Storage) GetUserByToken(ctx context.Context, token string) (*model.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	return s.findUser(func(u *model.User) bool { return u.APIKey == token })
}

func (s *Storage) findUser(match func(*model.User) bool) (*model.User, error) {
	users, err := s.readUsers()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if match(u) {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	games, err := s.readGames()
	if err != nil {
		return err
	}

	replaced := false
	for i, g := range games {
		if g.ID == game.ID {
			games[i] = game
			replaced = true
			break
		}
	}
	if !replaced {
		games = append(games, game)
	}

	return s.writeCollection(gamesFile, games)
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	games, err := s.readGames()
	if err != nil {
		return nil, err
	}
	for _, g := range games {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, model.ErrGameNotFound
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	games, err := s.readGames()
	if err != nil {
		return err
	}

	kept := games[:0]
	for _, g := range games {
		if g.ID != id {
			kept = append(kept, g)
		}
	}

	return s.writeCollection(gamesFile, kept)
}

func (s *Storage) ListGamesByOwner(ctx context.Context, ownerID model.UserID) ([]*model.Game, error) {
	s.gamesMu.Lock()
	defer s.gamesMu.Unlock()

	games, err := s.readGames()
	if err != nil {
		return nil, err
	}

	var owned []*model.Game
	for _, g := range games {
		if g.OwnerID == ownerID {
			owned = append(owned, g)
		}
	}
	return owned, nil
}
