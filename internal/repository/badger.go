package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/guttosm/packing-service/internal/domain/model"
	"github.com/guttosm/packing-service/internal/logger"
)

// BadgerConfig configures the embedded key-value store.
type BadgerConfig struct {
	// Path is the data directory. Ignored when InMemory is set.
	Path string
	// InMemory keeps all data in RAM, used by tests.
	InMemory bool
}

// OpenBadger opens a badger database with library logging routed to zerolog.
func OpenBadger(cfg BadgerConfig) (*badger.DB, error) {
	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(logger.NewPrintfAdapter("badger"))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", cfg.Path, err)
	}
	return db, nil
}

// BadgerStore keeps a collection under a single badger key.
type BadgerStore[T any] struct {
	db  *badger.DB
	key string
}

// NewBadgerStore creates a store for the given collection key.
func NewBadgerStore[T any](db *badger.DB, key string) *BadgerStore[T] {
	return &BadgerStore[T]{db: db, key: key}
}

// Load reads the collection. A missing key yields an empty collection.
func (s *BadgerStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(s.key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	return decodeCollection[T](s.key, data)
}

// SaveAll writes the whole collection in one transaction.
func (s *BadgerStore[T]) SaveAll(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeCollection(s.key, items)
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(s.key), data)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// BadgerBackend stores both collections in one embedded database.
type BadgerBackend struct {
	db       *badger.DB
	clothing *BadgerStore[model.ClothingItem]
	trips    *BadgerStore[model.Trip]
}

// NewBadgerBackend opens the database described by cfg.
func NewBadgerBackend(cfg BadgerConfig) (*BadgerBackend, error) {
	db, err := OpenBadger(cfg)
	if err != nil {
		return nil, err
	}
	return &BadgerBackend{
		db:       db,
		clothing: NewBadgerStore[model.ClothingItem](db, ClothingItemsKey),
		trips:    NewBadgerStore[model.Trip](db, TripsKey),
	}, nil
}

func (b *BadgerBackend) Name() string            { return "badger" }
func (b *BadgerBackend) Clothing() ClothingStore { return b.clothing }
func (b *BadgerBackend) Trips() TripStore        { return b.trips }

// HealthCheck fails once the database has been closed.
func (b *BadgerBackend) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return nil
}

// Close flushes and closes the database.
func (b *BadgerBackend) Close(context.Context) error {
	return b.db.Close()
}
