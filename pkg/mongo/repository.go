package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/remindme/core"
)

// Repository is a typed view over one collection. Documents carry their own
// _id, assigned by the caller before Insert.
//
// Driver errors are translated and tagged with a core.Kind:
//   - no documents and malformed ids become core.KindNotFound
//   - unique index violations become core.KindConflict
type Repository[T any] struct {
	coll *mongo.Collection
}

// NewRepository returns a repository bound to the named collection.
func NewRepository[T any](db *mongo.Database, collection string) *Repository[T] {
	return &Repository[T]{coll: db.Collection(collection)}
}

// Collection exposes the underlying collection for index management.
func (r *Repository[T]) Collection() *mongo.Collection {
	return r.coll
}

// Insert stores doc.
func (r *Repository[T]) Insert(ctx context.Context, doc *T) error {
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return translate(r.coll.Name(), "insert", err)
	}
	return nil
}

// FindOne returns the first document matching filter.
func (r *Repository[T]) FindOne(ctx context.Context, filter any) (*T, error) {
	var doc T
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(r.coll.Name(), "find", err)
	}
	return &doc, nil
}

// FindByID returns the document whose _id is the given hex string.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.FindOne(ctx, bson.M{"_id": oid})
}

// Find returns all documents matching filter, sorted by creation order.
func (r *Repository[T]) Find(ctx context.Context, filter any) ([]T, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, translate(r.coll.Name(), "find", err)
	}

	docs := make([]T, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translate(r.coll.Name(), "decode", err)
	}
	return docs, nil
}

// Replace overwrites the single document matching filter with doc.
func (r *Repository[T]) Replace(ctx context.Context, filter any, doc *T) error {
	res, err := r.coll.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return translate(r.coll.Name(), "replace", err)
	}
	if res.MatchedCount == 0 {
		return translate(r.coll.Name(), "replace", mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes the single document matching filter.
func (r *Repository[T]) Delete(ctx context.Context, filter any) error {
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return translate(r.coll.Name(), "delete", err)
	}
	if res.DeletedCount == 0 {
		return translate(r.coll.Name(), "delete", mongo.ErrNoDocuments)
	}
	return nil
}

// ParseID converts a hex string into an ObjectID. A malformed id is reported
// as a missing document.
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, core.NotFound(fmt.Errorf("%w for value %q", ErrInvalidObjectID, id))
	}
	return oid, nil
}

func translate(collection, op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return core.NotFound(fmt.Errorf("%s %s: %w", collection, op, ErrDocumentNotFound))
	case mongo.IsDuplicateKeyError(err):
		return core.Conflict(fmt.Errorf("%s %s: %w: %w", collection, op, ErrDuplicateKey, err))
	default:
		return fmt.Errorf("%s %s: %w", collection, op, err)
	}
}
