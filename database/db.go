package database

import (
	"context"
	"time"

	"classtrack/config"
	"classtrack/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects and verifies the MongoDB deployment named in the config.
func InitDB() {
	logger := utils.GetLogger().Sugar()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatalf("database: failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatalf("database: failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	logger.Infof("Connected to MongoDB (%s)", config.AppConfig.DatabaseName)
}
