package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type searchTermRepo struct {
	db *mongo.Database
}

func newSearchTermRepo(db *mongo.Database) SearchTerm {
	return &searchTermRepo{
		db: db,
	}
}

func (r *searchTermRepo) terms() *mongo.Collection {
	return r.db.Collection(searchTermsCollection)
}

// RecordOccurrence upserts the term document and bumps its frequency, so the
// collection keeps one document per distinct term.
func (r *searchTermRepo) RecordOccurrence(ctx context.Context, term string) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.terms().UpdateOne(
		ctx,
		bson.M{"data": term},
		bson.M{"$inc": bson.M{"freq": 1}},
		opts,
	)
	return err
}
