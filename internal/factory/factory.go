package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/playhub/portal/internal/dependencies/clock"
	"github.com/playhub/portal/internal/dependencies/random"
	"github.com/playhub/portal/internal/kvstore"
	"github.com/playhub/portal/internal/kvstore/memory"
	redisstore "github.com/playhub/portal/internal/kvstore/redis"
	"github.com/playhub/portal/internal/services/arcade"
	"github.com/playhub/portal/internal/services/dictionary"
	"github.com/playhub/portal/internal/services/profile"
	"github.com/playhub/portal/internal/services/registry"
	"github.com/playhub/portal/internal/services/scores"
	"github.com/playhub/portal/internal/services/stats"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage. The durable store survives restarts when backed by redis;
	// the volatile store is always in-memory, so sessions die with the
	// process.
	DurableStore kvstore.Store
	Durable      *kvstore.KV
	Volatile     *kvstore.KV

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SnakeStats *stats.Store
	WordsStats *stats.Store
	Dictionary *dictionary.Service
	Registry   *registry.Service
	Scores     *scores.Service
	Profile    *profile.Service
	Arcade     *arcade.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the durable storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstore.Config
	// RegistryConfig holds registry settings (optional)
	// If zero value, defaults to registry.DefaultConfig()
	RegistryConfig registry.Config
	// WordsPath is an optional word-list file replacing the built-in corpus
	WordsPath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store kvstore.Store
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
		redisStore, err := redisstore.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	regCfg := cfg.RegistryConfig
	if regCfg.MaxLoginAttempts == 0 {
		regCfg = registry.DefaultConfig()
	}

	app := newWithDependencies(store, clock.New(), random.New(), regCfg, logger)

	if cfg.WordsPath != "" {
		if err := app.Dictionary.LoadFromFile(cfg.WordsPath); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store kvstore.Store,
	clk clock.Clock,
	rnd random.Random,
	regCfg registry.Config,
	logger *slog.Logger,
) *App {
	durable := kvstore.New(store, logger)
	volatile := kvstore.New(memory.New(), logger)

	snakeStats := stats.New(durable, stats.SnakeKeys(), logger)
	wordsStats := stats.New(durable, stats.WordsKeys(), logger)
	dictService := dictionary.New(rnd)
	registryService := registry.New(durable, volatile, clk, regCfg, snakeStats, wordsStats, logger)
	scoresService := scores.New(durable, clk, logger)
	profileService := profile.New(durable, registryService, snakeStats, wordsStats, logger)
	arcadeService := arcade.New(snakeStats, wordsStats, scoresService, dictService, clk, rnd, logger)

	return &App{
		DurableStore: store,
		Durable:      durable,
		Volatile:     volatile,
		Clock:        clk,
		Random:       rnd,
		SnakeStats:   snakeStats,
		WordsStats:   wordsStats,
		Dictionary:   dictService,
		Registry:     registryService,
		Scores:       scoresService,
		Profile:      profileService,
		Arcade:       arcadeService,
	}
}
