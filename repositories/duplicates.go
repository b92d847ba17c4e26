package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"echo-analytics/db"
	"echo-analytics/models"
)

// DuplicateRepository owns the side collection that receives records rejected
// by the unique Link constraint during ingestion.
type DuplicateRepository struct {
	col *mongo.Collection
}

func NewDuplicateRepository(d *mongo.Database) *DuplicateRepository {
	return &DuplicateRepository{col: d.Collection(db.CollectionDuplicate)}
}

func (r *DuplicateRepository) Insert(ctx context.Context, p models.CanonicalPost) error {
	// The conflicting record keeps its metadata_id, so the originating upload
	// stays traceable from the duplicates side as well.
	_, err := r.col.InsertOne(ctx, p)
	return err
}
