// File: database/repository/class/interface.go
package classRepo

import (
	"context"

	"classtrack/config"
	"classtrack/database"
	"classtrack/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ClassRepository interface {
	Create(ctx context.Context, class *models.Class) error
	GetByID(ctx context.Context, id string) (*models.Class, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page, limit int) ([]models.Class, int64, error)
	EnsureIndexes() error
}

type mongoClassRepo struct {
	coll *mongo.Collection
}

// NewMongoClassRepo constructs a new MongoDB ClassRepository.
func NewMongoClassRepo() ClassRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoClassRepo{
		coll: db.Collection("classes"),
	}
}
