package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"echo-analytics/db"
	"echo-analytics/models"
)

type KeywordRepository struct {
	col *mongo.Collection
}

func NewKeywordRepository(d *mongo.Database) *KeywordRepository {
	return &KeywordRepository{col: d.Collection(db.CollectionKeyword)}
}

// FindAll loads every keyword rule. The pipeline fetches them once per run.
func (r *KeywordRepository) FindAll(ctx context.Context) ([]models.KeywordRule, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rules []models.KeywordRule
	for cur.Next(ctx) {
		var k models.KeywordRule
		if err := cur.Decode(&k); err != nil {
			return nil, err
		}
		rules = append(rules, k)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}
