// server/internal/database/mongo.go
package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB bundles the driver client with the database handle the handlers
// use.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes the MongoDB connection. The URI is patched with the
// default database name when it carries none. A failed startup ping is
// logged, not fatal: the driver connects lazily, so the server starts
// degraded and individual operations fail until the store comes back.
func Connect(uri, defaultDBName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri = EnsureDatabaseName(uri, defaultDBName)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	dbName := databaseNameFromURI(uri)
	if dbName == "" {
		dbName = defaultDBName
	}

	db := &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Printf("MongoDB connection not ready: %v", err)
		log.Println("Server will continue running, but database operations will fail until the connection is established")
		return db, nil
	}

	log.Printf("MongoDB connected, database %q", dbName)
	return db, nil
}

// Ping reports whether the store is reachable. Used by the readiness probe.
func (m *MongoDB) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return errors.New("database not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}

// DatabaseOrNil returns the database handle, tolerating a nil receiver so
// the router can be built even when the boot-time connection failed.
func (m *MongoDB) DatabaseOrNil() *mongo.Database {
	if m == nil {
		return nil
	}
	return m.Database
}

// Close disconnects the client. Called from the shutdown hook.
func (m *MongoDB) Close() error {
	if m == nil || m.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}
