package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"echo-analytics/db"
	"echo-analytics/models"
)

type MetadataRepository struct {
	col *mongo.Collection
}

func NewMetadataRepository(d *mongo.Database) *MetadataRepository {
	return &MetadataRepository{col: d.Collection(db.CollectionMetadata)}
}

// Insert stores the batch metadata and returns its generated id.
func (r *MetadataRepository) Insert(ctx context.Context, meta models.UploadMeta) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, meta)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}
