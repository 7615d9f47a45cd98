package auth

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mhollis/gamewire/internal/dependencies/clock"
	"github.com/mhollis/gamewire/internal/dependencies/random"
	"github.com/mhollis/gamewire/internal/model"
	"github.com/mhollis/gamewire/internal/storage"
)

// Errors
var (
	// ErrInvalidToken indicates the presented API key matches no user
	ErrInvalidToken = errors.New("invalid API key")
)

const (
	apiKeyPrefix   = "gw_"
	apiKeyLength   = 40
	apiKeyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Service handles user registration and API key authentication
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// mu holds the uniqueness check and the save together. SaveUser is
	// an upsert, so two registrations of the same username racing past
	// the check would both succeed.
	mu sync.Mutex
}

// New creates a new auth Service
func New(storage storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		random:  rnd,
		logger:  logger.With(slog.String("component", "auth")),
	}
}

// Register creates a user and issues their API key. Usernames are unique;
// registering an existing username fails and leaves the user collection
// unchanged.
func (s *Service) Register(ctx context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, model.ErrUsernameExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	user := &model.User{
		ID:        model.UserID(uuid.NewString()),
		Username:  username,
		APIKey:    apiKeyPrefix + s.random.String(apiKeyLength, apiKeyAlphabet),
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", string(user.ID)),
		slog.String("username", user.Username))

	return user, nil
}

// Authenticate resolves a bearer token to its user. The token is compared
// by equality; there is no expiry or revocation.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.storage.GetUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
