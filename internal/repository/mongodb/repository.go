package mongodb

import (
	"context"
	"errors"

	"github.com/jeehoo0767/dru-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	postsCollection       = "posts"
	usersCollection       = "users"
	searchTermsCollection = "search_terms"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

var ErrFieldsNotAllowedToUpdate = errors.New("provided fields are not allowed to update")

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	FindPage(ctx context.Context, filter PostFilter, sort SortMode, limit int, skip int) ([]model.Post, int64, error)
	IncrViews(ctx context.Context, id primitive.ObjectID) error

	HasPostLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error)
	LikePost(ctx context.Context, postID, userID primitive.ObjectID, unlike bool) (*model.Post, error)

	PushComment(ctx context.Context, postID primitive.ObjectID, comment model.Comment) (*model.Post, error)
	SetCommentText(ctx context.Context, commentID primitive.ObjectID, text string) (*model.Post, error)
	PullComment(ctx context.Context, postID, commentID primitive.ObjectID) (*model.Post, error)
	HasCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (bool, error)
	LikeComment(ctx context.Context, postID, commentID, userID primitive.ObjectID, unlike bool) (*model.Post, error)

	PushReply(ctx context.Context, postID, commentID primitive.ObjectID, reply model.Reply) (*model.Post, error)
	SetReplyText(ctx context.Context, postID, commentID, replyID primitive.ObjectID, text string) (*model.Post, error)
	PullReply(ctx context.Context, postID, commentID, replyID primitive.ObjectID) (*model.Post, error)
	HasReplyLike(ctx context.Context, replyID, userID primitive.ObjectID) (bool, error)
	LikeReply(ctx context.Context, postID, commentID, replyID, userID primitive.ObjectID, unlike bool) (*model.Post, error)
}

type SearchTerm interface {
	RecordOccurrence(ctx context.Context, term string) error
}

type User interface {
	Create(ctx context.Context, user model.CachedUser) error
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.CachedUser, error)
}

type MongoRepository struct {
	Post
	SearchTerm
	User
}

func New(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		Post:       newPostRepo(db),
		SearchTerm: newSearchTermRepo(db),
		User:       newUserRepo(db),
	}
}
