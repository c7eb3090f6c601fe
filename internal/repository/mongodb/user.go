package mongodb

import (
	"context"

	"github.com/jeehoo0767/dru-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepo struct {
	db *mongo.Database
}

func newUserRepo(db *mongo.Database) User {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) users() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

func (r *userRepo) Create(ctx context.Context, user model.CachedUser) error {
	_, err := r.users().InsertOne(ctx, user)
	return err
}

func (r *userRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"username", "displayName", "avatarUrl", "followingIds"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	set := bson.M{}
	for field, value := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
		set[field] = value
	}

	_, err := r.users().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *userRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.CachedUser, error) {
	var user model.CachedUser
	if err := r.users().FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}
