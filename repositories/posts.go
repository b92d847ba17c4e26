package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"echo-analytics/db"
	"echo-analytics/models"
)

// PostRepository owns the enriched posts collection. Documents are written
// once by the pipeline and only ever read afterwards.
type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(d *mongo.Database) *PostRepository {
	return &PostRepository{col: d.Collection(db.CollectionPosts)}
}

// InsertMany commits enriched posts in one bulk write.
func (r *PostRepository) InsertMany(ctx context.Context, posts []models.EnrichedPost) (int, error) {
	docs := make([]interface{}, len(posts))
	for i := range posts {
		docs[i] = posts[i]
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// DistinctTransformIDs returns the set of uploaded_data ids that already have
// an enriched post, in one scan.
func (r *PostRepository) DistinctTransformIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	raw, err := r.col.Distinct(ctx, "transform_data_id", bson.M{})
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// FindAllRaw returns every enriched post as a raw document, preserving the
// dynamic entity columns for export.
func (r *PostRepository) FindAllRaw(ctx context.Context) ([]bson.M, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []bson.M
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
