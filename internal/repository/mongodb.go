package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/packing-service/internal/circuitbreaker"
	"github.com/guttosm/packing-service/internal/domain/model"
)

// DocumentsCollection holds one document per collection key.
const DocumentsCollection = "documents"

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
}

// DefaultMongoConfig returns the connection settings used in production.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            20,
		MinPoolSize:            2,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Documents *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects and pings the server.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	return &MongoDB{
		Client:    client,
		Database:  db,
		Documents: db.Collection(DocumentsCollection),
	}, nil
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}

type collectionDocument[T any] struct {
	Key       string    `bson:"_id"`
	Items     []T       `bson:"items"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps a collection as a single document keyed by the collection key.
type MongoStore[T any] struct {
	collection *mongo.Collection
	key        string
}

// NewMongoStore creates a store for the given collection key.
func NewMongoStore[T any](db *MongoDB, key string) *MongoStore[T] {
	return &MongoStore[T]{collection: db.Documents, key: key}
}

// Load reads the collection document. A missing document yields an empty collection.
func (s *MongoStore[T]) Load(ctx context.Context) ([]T, error) {
	var doc collectionDocument[T]
	err := s.collection.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	if doc.Items == nil {
		doc.Items = []T{}
	}
	return doc.Items, nil
}

// SaveAll replaces the collection document, creating it if needed.
func (s *MongoStore[T]) SaveAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	doc := collectionDocument[T]{Key: s.key, Items: items, UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": s.key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// MongoBackend stores both collections in MongoDB.
type MongoBackend struct {
	db       *MongoDB
	clothing ClothingStore
	trips    TripStore
}

// NewMongoBackend builds the stores on db. A non-nil breaker guards every store call.
func NewMongoBackend(db *MongoDB, cb *circuitbreaker.CircuitBreaker) *MongoBackend {
	var clothing ClothingStore = NewMongoStore[model.ClothingItem](db, ClothingItemsKey)
	var trips TripStore = NewMongoStore[model.Trip](db, TripsKey)
	if cb != nil {
		clothing = NewDocumentStoreWithCircuitBreaker(clothing, cb)
		trips = NewDocumentStoreWithCircuitBreaker(trips, cb)
	}
	return &MongoBackend{db: db, clothing: clothing, trips: trips}
}

func (b *MongoBackend) Name() string                          { return "mongodb" }
func (b *MongoBackend) Clothing() ClothingStore               { return b.clothing }
func (b *MongoBackend) Trips() TripStore                      { return b.trips }
func (b *MongoBackend) HealthCheck(ctx context.Context) error { return b.db.HealthCheck(ctx) }
func (b *MongoBackend) Close(ctx context.Context) error       { return b.db.Close(ctx) }
