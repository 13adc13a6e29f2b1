package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NoLimit asks GetDocuments for an uncapped listing.
const NoLimit = -1

const connectTimeout = 5 * time.Second

// Store wraps the MongoDB connection established at startup. Handlers
// receive it once and share it for the lifetime of the process; a nil
// gateway means storage is not configured.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the MongoDB connection and verifies it with a ping.
// It returns an error instead of exiting so the caller can keep the
// server running in an "unavailable" state.
func Connect(databaseURL, databaseName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Check if the connection is actually working
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	log.Println("✅ Successfully connected to the database")
	return &Store{client: client, db: client.Database(databaseName)}, nil
}

// Close disconnects the client.
func (s *Store) Close() {
	if s == nil {
		return
	}
	if err := s.client.Disconnect(context.Background()); err != nil {
		log.Printf("⚠️  Error closing database connection: %v", err)
		return
	}
	log.Println("Database connection closed")
}

// CreateDocument inserts one record into the named collection and returns
// the newly assigned id as a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// GetDocuments returns records from the named collection in natural storage
// order. A non-negative limit caps the result; limit 0 short-circuits to an
// empty list without touching the database. Pass NoLimit for everything.
func (s *Store) GetDocuments(ctx context.Context, collection string, limit int64) ([]bson.M, error) {
	docs := make([]bson.M, 0)
	if limit == 0 {
		return docs, nil
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ListCollectionNames reports the collection names in the database. Used by
// the diagnostics endpoint as a connectivity probe.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}
