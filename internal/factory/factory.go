package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/dependencies/clock"
	"github.com/kiliclub/clubdesk/internal/services/export"
	"github.com/kiliclub/clubdesk/internal/services/location"
	"github.com/kiliclub/clubdesk/internal/services/payment"
	"github.com/kiliclub/clubdesk/internal/services/player"
	"github.com/kiliclub/clubdesk/internal/services/role"
	"github.com/kiliclub/clubdesk/internal/storage"
	"github.com/kiliclub/clubdesk/internal/storage/memory"
	redisstorage "github.com/kiliclub/clubdesk/internal/storage/redis"
	sqlitestorage "github.com/kiliclub/clubdesk/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Change notification
	Bus *bus.Bus

	// Services
	PlayerService   *player.Service
	PaymentService  *payment.Service
	LocationService *location.Service
	RoleService     *role.Service
	ExportService   *export.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file path (required if StorageType is "sqlite")
	SQLitePath string
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
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	return newWithDependencies(store, clock.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, logger *slog.Logger) *App {
	changeBus := bus.New(logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Bus:             changeBus,
		PlayerService:   player.New(store, changeBus, clk, logger),
		PaymentService:  payment.New(store, changeBus, clk, logger),
		LocationService: location.New(store, changeBus, clk, logger),
		RoleService:     role.New(store, changeBus, clk, logger),
		ExportService:   export.New(store, changeBus, clk, logger),
	}
}

// Close releases the app's resources
func (a *App) Close() error {
	a.Bus.Close()
	return a.Storage.Close()
}
