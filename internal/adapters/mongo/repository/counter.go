package repository

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/adapters/mongo/document"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sequence allocates monotonically increasing int64 identifiers from the counters collection.
type Sequence struct {
	collection *mongo.Collection
	name       string
}

func NewSequence(db *mongo.Database, name string) *Sequence {
	return &Sequence{collection: db.Collection("counters"), name: name}
}

func (s *Sequence) Next(ctx context.Context) (int64, error) {
	var counter document.CounterDocument
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": s.name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, parseError(err, "counter")
	}
	return counter.Seq, nil
}

// Raise lifts the sequence to at least value so Next never hands it out.
func (s *Sequence) Raise(ctx context.Context, value int64) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": s.name},
		bson.M{"$max": bson.M{"seq": value}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return parseError(err, "counter")
	}
	return nil
}
