package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mearas/realmwar/internal/dependencies/clock"
	"github.com/mearas/realmwar/internal/services/accounts"
	"github.com/mearas/realmwar/internal/services/army"
	"github.com/mearas/realmwar/internal/services/claimbuild"
	"github.com/mearas/realmwar/internal/services/faction"
	"github.com/mearas/realmwar/internal/services/player"
	"github.com/mearas/realmwar/internal/services/unittype"
	"github.com/mearas/realmwar/internal/storage"
	"github.com/mearas/realmwar/internal/storage/memory"
	redisstorage "github.com/mearas/realmwar/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Directory accounts.Directory

	// Services
	ArmyService       *army.Service
	PlayerService     *player.Service
	FactionService    *faction.Service
	ClaimBuildService *claimbuild.Service
	UnitTypeService   *unittype.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Directory is the external game-account directory (optional)
	// If nil, an HTTP client with accounts.DefaultConfig() is used
	Directory accounts.Directory
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
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
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	directory := cfg.Directory
	if directory == nil {
		directory = accounts.NewClient(accounts.DefaultConfig())
	}

	return newWithDependencies(store, directory, clock.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, directory accounts.Directory, clk clock.Clock, logger *slog.Logger) *App {
	return &App{
		Storage:           store,
		Clock:             clk,
		Directory:         directory,
		ArmyService:       army.New(store, clk, logger),
		PlayerService:     player.New(store, directory, clk, logger),
		FactionService:    faction.New(store, logger),
		ClaimBuildService: claimbuild.New(store, logger),
		UnitTypeService:   unittype.New(store, logger),
	}
}
