package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"echo-analytics/db"
	"echo-analytics/models"
)

// ErrStorageWrite marks a bulk-insert failure that is not a duplicate-key
// conflict. Duplicate keys are routed, everything else aborts the batch.
var ErrStorageWrite = errors.New("storage write failed")

const duplicateKeyCode = 11000

type UploadRepository struct {
	col *mongo.Collection
}

func NewUploadRepository(d *mongo.Database) *UploadRepository {
	return &UploadRepository{col: d.Collection(db.CollectionUploaded)}
}

// EnsureLinkIndex creates the unique index on Link. CreateOne is a no-op when
// the index already exists, so calling it before every batch is safe.
func (r *UploadRepository) EnsureLinkIndex(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "Link", Value: 1}},
		Options: options.Index().SetName("uniq_link").SetUnique(true),
	})
	return err
}

// InsertManyUnordered bulk-inserts posts without ordering, so one failing
// record does not stop the rest. It returns the indexes of records rejected
// by the unique Link constraint; any other write failure is ErrStorageWrite.
func (r *UploadRepository) InsertManyUnordered(ctx context.Context, posts []models.CanonicalPost) (inserted int, duplicates []int, err error) {
	docs := make([]interface{}, len(posts))
	for i := range posts {
		docs[i] = posts[i]
	}

	_, insErr := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if insErr == nil {
		return len(posts), nil, nil
	}

	duplicates, err = duplicateIndexes(insErr)
	if err != nil {
		return 0, nil, err
	}
	return len(posts) - len(duplicates), duplicates, nil
}

// duplicateIndexes decodes a bulk-write error into the per-record conflict
// set. A write error with any code other than duplicate-key is fatal.
func duplicateIndexes(insErr error) ([]int, error) {
	var bwe mongo.BulkWriteException
	if !errors.As(insErr, &bwe) {
		return nil, errors.Join(ErrStorageWrite, insErr)
	}
	if bwe.WriteConcernError != nil {
		return nil, errors.Join(ErrStorageWrite, insErr)
	}

	var dup []int
	for _, we := range bwe.WriteErrors {
		if we.Code != duplicateKeyCode {
			return nil, errors.Join(ErrStorageWrite, insErr)
		}
		dup = append(dup, we.Index)
	}
	return dup, nil
}

// FindNotProcessed returns every uploaded record whose _id is not in the
// given processed set. Passing the full set keeps this at one scan instead of
// one existence query per record.
func (r *UploadRepository) FindNotProcessed(ctx context.Context, processed []primitive.ObjectID) ([]models.CanonicalPost, error) {
	if processed == nil {
		processed = []primitive.ObjectID{}
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$nin": processed}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.CanonicalPost
	for cur.Next(ctx) {
		var p models.CanonicalPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
