package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mhollis/gamewire/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
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

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := testUser()

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(user.APIKey, retrieved.APIKey)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	_ = s.storage.SaveUser(s.ctx, testUser())

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)

	_, err = s.storage.GetUserByUsername(s.ctx, "bob")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByToken() {
	_ = s.storage.SaveUser(s.ctx, testUser())

	retrieved, err := s.storage.GetUserByToken(s.ctx, "gw_testkey")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)

	_, err = s.storage.GetUserByToken(s.ctx, "gw_wrong")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := testGame("game-1", "user-1")

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.Name, retrieved.Name)
	s.Equal(game.OwnerID, retrieved.OwnerID)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveGameOverwrites() {
	game := testGame("game-1", "user-1")
	_ = s.storage.SaveGame(s.ctx, game)

	game.Name = "Renamed"
	_ = s.storage.SaveGame(s.ctx, game)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal("Renamed", retrieved.Name)
}

func (s *StorageSuite) TestGetGameReturnsIndependentCopy() {
	_ = s.storage.SaveGame(s.ctx, testGame("game-1", "user-1"))

	first, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	first.Name = "Mutated"
	first.Players = append(first.Players, model.Player{ID: "p1", Name: "Alice"})

	second, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal("Friday Chess", second.Name)
	s.Empty(second.Players)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, testGame("game-1", "user-1"))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesByOwner() {
	_ = s.storage.SaveGame(s.ctx, testGame("game-1", "user-1"))
	_ = s.storage.SaveGame(s.ctx, testGame("game-2", "user-1"))
	_ = s.storage.SaveGame(s.ctx, testGame("game-3", "user-2"))

	games, err := s.storage.ListGamesByOwner(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(games, 2)

	games, err = s.storage.ListGamesByOwner(s.ctx, "user-3")
	s.Require().NoError(err)
	s.Empty(games)
}
