// Package db provides document store connectivity for the projtrack application.
// It establishes the MongoDB client, verifies the connection at startup, and
// ensures the indexes the application's invariants depend on.
package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/user/projtrack-go/apperror"
	"github.com/user/projtrack-go/config"
)

// Collection names used across the application.
const (
	UsersCollection    = "users"
	ProjectsCollection = "projects"
)

// connectTimeout bounds the initial connection handshake and ping.
const connectTimeout = 10 * time.Second

// Store wraps the MongoDB client and the application database handle.
type Store struct {
	client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes a MongoDB connection using the provided configuration,
// verifies it with a ping, and ensures the required indexes exist.
func Connect(cfg *config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create mongo client", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Disconnect to release any resources held by the failed client.
		_ = client.Disconnect(context.Background())
		return nil, apperror.NewDatabaseError("failed to ping mongo", err)
	}

	store := &Store{
		client:   client,
		Database: client.Database(cfg.Database),
	}

	if err := store.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return store, nil
}

// ensureIndexes creates the indexes the application relies on. The unique
// index on users.email is the source of truth for duplicate registration:
// concurrent registrations with the same email race at the store, and the
// store rejects the second insert.
func (s *Store) ensureIndexes(ctx context.Context) error {
	users := s.Database.Collection(UsersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return apperror.NewDatabaseError("failed to create unique email index", err)
	}

	projects := s.Database.Collection(ProjectsCollection)
	_, err = projects.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}},
	})
	if err != nil {
		return apperror.NewDatabaseError("failed to create project owner index", err)
	}

	return nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
