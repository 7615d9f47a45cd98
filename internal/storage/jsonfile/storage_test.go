package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mhollis/gamewire/internal/model"
)

type StorageSuite struct {
	suite.Suite
	dir     string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dir = s.T().TempDir()

	store, err := New(s.dir)
	s.Require().NoError(err)

	s.storage = store
	s.ctx = context.Background()
}

func testUser() *model.User {
	return &model.User{
		ID:        "user-1",
		Username:  "alice",
		APIKey:    "gw_testkey",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testGame(id model.GameID, owner model.UserID) *model.Game {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Game{
		ID:        id,
		Name:      "Friday Chess",
		OwnerID:   owner,
		Status:    model.GameStatusActive,
		Players:   []model.Player{},
		Moves:     []model.Move{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *StorageSuite) TestNewCreatesDataDir() {
	nested := filepath.Join(s.T().TempDir(), "a", "b")

	_, err := New(nested)
	s.Require().NoError(err)

	info, err := os.Stat(nested)
	s.Require().NoError(err)
	s.True(info.IsDir())
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	err := s.storage.SaveUser(s.ctx, testUser())
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsernameAndToken() {
	_ = s.storage.SaveUser(s.ctx, testUser())

	byName, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), byName.ID)

	byToken, err := s.storage.GetUserByToken(s.ctx, "gw_testkey")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), byToken.ID)
}

func (s *StorageSuite) TestSaveUserReplacesExisting() {
	user := testUser()
	_ = s.storage.SaveUser(s.ctx, user)

	user.Username = "alice2"
	_ = s.storage.SaveUser(s.ctx, user)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("alice2", retrieved.Username)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	err := s.storage.SaveGame(s.ctx, testGame("game-1", "user-1"))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal("Friday Chess", retrieved.Name)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, testGame("game-1", "user-1"))
	_ = s.storage.SaveGame(s.ctx, testGame("game-2", "user-1"))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	_, err = s.storage.GetGame(s.ctx, "game-2")
	s.NoError(err)
}

func (s *StorageSuite) TestListGamesByOwner() {
	_ = s.storage.SaveGame(s.ctx, testGame("game-1", "user-1"))
	_ = s.storage.SaveGame(s.ctx, testGame("game-2", "user-2"))

	games, err := s.storage.ListGamesByOwner(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(model.GameID("game-1"), games[0].ID)
}

func (s *StorageSuite) TestGamePayloadSurvivesRoundTrip() {
	game := testGame("game-1", "user-1")
	game.Players = []model.Player{{ID: "player-1", Name: "Alice", JoinedAt: game.CreatedAt}}
	game.Moves = []model.Move{{
		ID:        "move-1",
		PlayerID:  "player-1",
		Data:      map[string]any{"from": "e2", "to": "e4"},
		CreatedAt: game.CreatedAt,
	}}
	_ = s.storage.SaveGame(s.ctx, game)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Require().Len(retrieved.Moves, 1)
	s.Equal("e4", retrieved.Moves[0].Data["to"])
	s.Equal(game.CreatedAt, retrieved.Moves[0].CreatedAt)
}

func (s *StorageSuite) TestDataPersistsAcrossInstances() {
	_ = s.storage.SaveUser(s.ctx, testUser())
	_ = s.storage.SaveGame(s.ctx, testGame("game-1", "user-1"))

	reopened, err := New(s.dir)
	s.Require().NoError(err)

	user, err := reopened.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)

	game, err := reopened.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal("Friday Chess", game.Name)
}
