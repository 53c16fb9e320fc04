// server/internal/database/indexes.go
package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes every collection relies on. Creation is
// idempotent; an already existing index is a no-op for the driver.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products := db.Collection("products")
	_, err := products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "tagline", Value: "text"},
				{Key: "description", Value: "text"},
			},
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "inStock", Value: 1}}},
	})
	if err != nil {
		return err
	}

	team := db.Collection("team_members")
	_, err = team.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "displayOrder", Value: 1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "type", Value: 1}}},
	})
	if err != nil {
		return err
	}

	projects := db.Collection("projects")
	_, err = projects.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "year", Value: -1}}},
		{Keys: bson.D{{Key: "displayOrder", Value: -1}}},
	})
	if err != nil {
		return err
	}

	contacts := db.Collection("contacts")
	_, err = contacts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	})
	if err != nil {
		return err
	}

	bookings := db.Collection("bookings")
	_, err = bookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	log.Println("Database indexes ensured")
	return nil
}
