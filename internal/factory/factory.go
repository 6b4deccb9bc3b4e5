package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mribera/penjat3d/internal/dependencies/clock"
	"github.com/mribera/penjat3d/internal/dependencies/random"
	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/services/content"
	"github.com/mribera/penjat3d/internal/services/game"
	"github.com/mribera/penjat3d/internal/services/media"
	"github.com/mribera/penjat3d/internal/services/reveal"
	"github.com/mribera/penjat3d/internal/services/session"
	"github.com/mribera/penjat3d/internal/storage"
	"github.com/mribera/penjat3d/internal/storage/memory"
	redisstorage "github.com/mribera/penjat3d/internal/storage/redis"
	"github.com/mribera/penjat3d/internal/web/sse"
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
	Clock  clock.Clock
	Random random.Random

	// Services
	ContentProvider   content.Provider
	RevealService     *reveal.Service
	GameController    *game.Controller
	SessionController *session.Controller
	MediaDevice       *media.Device
	HubManager        *sse.HubManager
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
	// ContentURL is the base URL of the external content service (optional)
	// If empty, the built-in word catalog is used
	ContentURL string
	// ContentAPIKey authenticates against the content service
	ContentAPIKey string
	// GridSize is the cover grid dimension (optional, must be odd)
	// If zero, defaults to model.DefaultGridSize
	GridSize int
	// ReactionDelay is how long a terminal outcome is held back so the last
	// guess can be shown first (optional)
	// If nil, defaults to model.DefaultReactionDelay; an explicit zero
	// resolves outcomes inline
	ReactionDelay *time.Duration
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
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	var provider content.Provider
	if cfg.ContentURL != "" {
		provider = content.NewHTTPProvider(cfg.ContentURL, cfg.ContentAPIKey)
	} else {
		provider = content.NewCatalogProvider(rnd)
	}

	gridSize := cfg.GridSize
	if gridSize == 0 {
		gridSize = model.DefaultGridSize
	}

	reactionDelay := model.DefaultReactionDelay
	if cfg.ReactionDelay != nil {
		reactionDelay = *cfg.ReactionDelay
	}

	return newWithDependencies(store, clk, rnd, provider, gridSize, reactionDelay, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	provider content.Provider,
	gridSize int,
	reactionDelay time.Duration,
	logger *slog.Logger,
) *App {
	revealService := reveal.New(store, rnd, logger)
	gameController := game.NewController(store, clk, rnd, logger, reactionDelay)
	sessionController := session.NewController(store, gameController, revealService, provider, gridSize, logger)
	mediaDevice := media.NewDevice()
	hubManager := sse.NewHubManager(logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		ContentProvider:   provider,
		RevealService:     revealService,
		GameController:    gameController,
		SessionController: sessionController,
		MediaDevice:       mediaDevice,
		HubManager:        hubManager,
	}
}
