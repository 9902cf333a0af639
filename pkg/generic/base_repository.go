package generic

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBaseRepository provides the collection plumbing shared by every
// resource repository. Concrete repositories embed it and add the queries
// their resource needs.
type MongoBaseRepository[T any] struct {
	Collection *mongo.Collection
}

func NewBaseRepository[T any](collection *mongo.Collection) MongoBaseRepository[T] {
	return MongoBaseRepository[T]{Collection: collection}
}

// FindOne returns the first match, or (nil, nil) when nothing matches.
func (r *MongoBaseRepository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := r.Collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// Find returns all matches under the given options.
func (r *MongoBaseRepository[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []*T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// InsertOne inserts a document and returns its generated id.
func (r *MongoBaseRepository[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := r.Collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid, nil
	}
	return primitive.NilObjectID, nil
}

// DeleteByID removes a document by id and reports how many were deleted.
func (r *MongoBaseRepository[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Exists reports whether any document matches the filter.
func (r *MongoBaseRepository[T]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	err := r.Collection.FindOne(ctx, filter).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
