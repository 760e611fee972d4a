package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/packing-service/config"
	"github.com/guttosm/packing-service/internal/circuitbreaker"
	"github.com/guttosm/packing-service/internal/metrics"
	"github.com/guttosm/packing-service/internal/repository"
)

// StorageComponents holds the selected document store backend.
type StorageComponents struct {
	Backend repository.Backend
	// CircuitBreaker guards remote backends. Nil for embedded ones.
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeStorage opens the backend named by cfg.Backend.
func InitializeStorage(cfg config.StorageConfig) (*StorageComponents, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		log.Warn().Msg("Using in-memory storage, data is lost on restart")
		return &StorageComponents{Backend: repository.NewMemoryBackend()}, nil

	case config.BackendMongoDB:
		db, err := repository.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}
		cb := newCircuitBreaker("storage", cfg.MongoBreaker, nil)
		log.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")
		return &StorageComponents{
			Backend:        repository.NewMongoBackend(db, cb),
			CircuitBreaker: cb,
		}, nil

	default:
		backend, err := repository.NewBadgerBackend(repository.BadgerConfig{Path: cfg.BadgerPath})
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.BadgerPath).Msg("Opened badger store")
		return &StorageComponents{Backend: backend}, nil
	}
}

// newCircuitBreaker builds a breaker whose state is exported as a gauge.
// Zero thresholds keep the defaults.
func newCircuitBreaker(name string, cfg config.BreakerConfig, isFailure func(error) bool) *circuitbreaker.CircuitBreaker {
	cbCfg := circuitbreaker.DefaultConfig(name)
	if cfg.FailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.FailureThreshold
	}
	if cfg.SuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.SuccessThreshold
	}
	if cfg.Timeout > 0 {
		cbCfg.Timeout = cfg.Timeout
	}
	cbCfg.IsFailure = isFailure
	cbCfg.OnStateChange = func(name string, _, to circuitbreaker.State) {
		metrics.SetCircuitBreakerState(name, int(to))
	}

	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(cbCfg)
}
