package service

import (
	"context"

	"github.com/jeehoo0767/dru-backend/internal/dto"
	"github.com/jeehoo0767/dru-backend/internal/model"
	"github.com/jeehoo0767/dru-backend/internal/rabbitmq"
	"github.com/jeehoo0767/dru-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, author model.CachedUser, input dto.CreatePostRequest) (*model.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	FindLatest(ctx context.Context, tag string, q dto.ListQuery) (*dto.PostList, error)
	FindHot(ctx context.Context, tag string, q dto.ListQuery) (*dto.PostList, error)
	FindByCategory(ctx context.Context, category string, q dto.ListQuery) (*dto.PostList, error)
	FindByAuthor(ctx context.Context, authorID primitive.ObjectID, q dto.ListQuery) (*dto.PostList, error)
	FindFeed(ctx context.Context, followingIDs []primitive.ObjectID, q dto.ListQuery) (*dto.PostList, error)
	FindOrdered(ctx context.Context, orderBy string, q dto.ListQuery) (*dto.PostList, error)
	Like(ctx context.Context, postID, userID primitive.ObjectID) (*model.Post, error)
}

type Comment interface {
	Create(ctx context.Context, postID primitive.ObjectID, author model.CachedUser, text string) (*model.Post, error)
	UpdateText(ctx context.Context, commentID primitive.ObjectID, text string) (*model.Post, error)
	Delete(ctx context.Context, postID, commentID primitive.ObjectID) error
	Like(ctx context.Context, postID, commentID, userID primitive.ObjectID) (*model.Post, error)
}

type Reply interface {
	Create(ctx context.Context, postID, commentID primitive.ObjectID, author model.CachedUser, text string) (*model.Post, error)
	UpdateText(ctx context.Context, postID, commentID, replyID primitive.ObjectID, text string) (*model.Post, error)
	Delete(ctx context.Context, postID, commentID, replyID primitive.ObjectID) error
	Like(ctx context.Context, postID, commentID, replyID, userID primitive.ObjectID) (*model.Post, error)
}

type Search interface {
	Search(ctx context.Context, q dto.SearchQuery) (*dto.PostList, error)
}

type UserCache interface {
	CreateOrGet(ctx context.Context, id primitive.ObjectID, accessToken string) (*model.CachedUser, error)
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.CachedUser, error)
	StartConsume(ctx context.Context)
}

type Service struct {
	Post
	Comment
	Reply
	Search
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn) *Service {
	return &Service{
		Post:      newPostService(logger, repo, mq),
		Comment:   newCommentService(logger, repo),
		Reply:     newReplyService(logger, repo),
		Search:    newSearchService(logger, repo),
		UserCache: newUserCacheService(logger, repo, mq),
	}
}

func (s *Service) StartConsumeAll(ctx context.Context) {
	go s.UserCache.StartConsume(ctx)
}
