package database

import (
	"context"
	"log"
	"time"

	"hometeam/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance. It stays nil when the
// remote store is unreachable; the catalog service then runs cache-backed.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection. Unlike most dependencies this
// one is allowed to fail: the catalog falls back to its local cache tier.
func InitDB() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Printf("failed to connect to MongoDB, running without remote store: %v", err)
		return false
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("failed to ping MongoDB, running without remote store: %v", err)
		return false
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
	return true
}
