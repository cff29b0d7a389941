package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newID returns a fresh string primary key.
func newID() string {
	return primitive.NewObjectID().Hex()
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// findOne decodes the first match into a T. A missing document yields
// notFound.
func findOne[T any](ctx context.Context, col *mongo.Collection, filter any, notFound error, opts ...*options.FindOneOptions) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var result T
	if err := col.FindOne(ctx, filter, opts...).Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}
		return nil, fmt.Errorf("find one in %s: %w", col.Name(), err)
	}
	return &result, nil
}

// findMany decodes every match. The result is never nil.
func findMany[T any](ctx context.Context, col *mongo.Collection, filter any, opts ...*options.FindOptions) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", col.Name(), err)
	}
	defer cursor.Close(ctx)

	results := []*T{}
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
		}
		results = append(results, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", col.Name(), err)
	}
	return results, nil
}

// aggregate runs a pipeline and decodes every output document into a T.
func aggregate[T any](ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", col.Name(), err)
	}
	var out []T
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s aggregate: %w", col.Name(), err)
	}
	return out, nil
}

// insertOne maps a duplicate-key failure to conflict.
func insertOne(ctx context.Context, col *mongo.Collection, doc any, conflict error) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return conflict
		}
		return fmt.Errorf("insert into %s: %w", col.Name(), err)
	}
	return nil
}

// replaceByID overwrites a document, mapping no match to notFound and a
// duplicate key to conflict.
func replaceByID(ctx context.Context, col *mongo.Collection, id string, doc any, notFound, conflict error) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.ReplaceOne(ctx, byID(id), doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) && conflict != nil {
			return conflict
		}
		return fmt.Errorf("replace in %s: %w", col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return notFound
	}
	return nil
}

// setFields applies a $set on one document by id.
func setFields(ctx context.Context, col *mongo.Collection, id string, fields bson.D, notFound error) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.UpdateOne(ctx, byID(id), bson.D{{Key: "$set", Value: fields}})
	if err != nil {
		return fmt.Errorf("update %s: %w", col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return notFound
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string, notFound error) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("delete from %s: %w", col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return notFound
	}
	return nil
}

func count(ctx context.Context, col *mongo.Collection, filter any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", col.Name(), err)
	}
	return n, nil
}
