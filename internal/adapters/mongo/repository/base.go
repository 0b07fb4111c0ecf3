package repository

import (
	"context"
	"errors"

	"github.com/rafaelleal24/catalog/internal/adapters/mongo/document"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BaseRepository[T document.Document] struct {
	collection *mongo.Collection
	entityName string
}

func NewBaseRepository[T document.Document](db *mongo.Database, collectionName, entityName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		collection: db.Collection(collectionName),
		entityName: entityName,
	}
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id any) (*T, error) {
	var entity T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		return nil, r.parseError(err)
	}

	return &entity, nil
}

func (r *BaseRepository[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {

	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, r.parseError(err)
	}
	defer cursor.Close(ctx)

	entities := []T{}
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, r.parseError(err)
	}

	return entities, nil
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {

	_, err := r.collection.InsertOne(ctx, entity)
	if err != nil {
		return r.parseError(err)
	}

	return nil
}

// Replace writes entity under its ID, inserting it when absent.
func (r *BaseRepository[T]) Replace(ctx context.Context, entity *T) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": (*entity).GetID()},
		entity,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return r.parseError(err)
	}

	return nil
}

func (r *BaseRepository[T]) DeleteByID(ctx context.Context, id any) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return r.parseError(err)
	}

	if result.DeletedCount == 0 {
		return serviceerrors.NewNotFoundError(r.entityName + " not found")
	}

	return nil
}

func (r *BaseRepository[T]) parseError(err error) error {
	return parseError(err, r.entityName)
}

func parseError(err error, entityName string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return serviceerrors.NewNotFoundError(entityName + " not found")
	}
	if mongo.IsDuplicateKeyError(err) {
		return serviceerrors.NewConflictError(entityName + " already exists")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	return serviceerrors.NewUpstreamError("database error", err)
}
