package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mhollis/gamewire/internal/dependencies/clock"
	"github.com/mhollis/gamewire/internal/dependencies/random"
	"github.com/mhollis/gamewire/internal/realtime"
	"github.com/mhollis/gamewire/internal/services/auth"
	"github.com/mhollis/gamewire/internal/services/game"
	"github.com/mhollis/gamewire/internal/storage"
	"github.com/mhollis/gamewire/internal/storage/jsonfile"
	"github.com/mhollis/gamewire/internal/storage/memory"
	redisstorage "github.com/mhollis/gamewire/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeJSONFile = "jsonfile"
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService    *auth.Service
	GameController *game.Controller
	Hub            *realtime.Hub
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("jsonfile", "memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// DataDir is the directory for the jsonfile backend
	DataDir string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeJSONFile:
		dataDir := cfg.DataDir
		if dataDir == "" {
			dataDir = "data"
		}
		fileStore, err := jsonfile.New(dataDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'jsonfile', 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		AuthService:    auth.New(store, clk, rnd, logger),
		GameController: game.NewController(store, clk, logger),
		Hub:            realtime.NewHub(logger),
	}
}
