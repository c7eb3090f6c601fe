package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jeehoo0767/dru-backend/internal/dto"
	"github.com/jeehoo0767/dru-backend/internal/model"
	"github.com/jeehoo0767/dru-backend/internal/rabbitmq"
	"github.com/jeehoo0767/dru-backend/internal/repository"
	"github.com/jeehoo0767/dru-backend/internal/repository/mongodb"
	"github.com/jeehoo0767/dru-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
	mq     *rabbitmq.MQConn
}

func newPostService(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn) Post {
	return &postService{
		logger: logger,
		repo:   repo,
		mq:     mq,
	}
}

func (s *postService) Create(ctx context.Context, author model.CachedUser, input dto.CreatePostRequest) (*model.Post, error) {
	post := model.Post{
		Title:         input.Title,
		Body:          utils.SanitizeRichText(input.Body),
		Category:      input.Category,
		DiseasePeriod: input.DiseasePeriod,
		Tags:          input.Tags,
		PublishedDate: time.Now(),
		User:          author.Snapshot(),
	}

	createdPost, err := s.repo.Mongo.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", author.ID.Hex(), err.Error())
		return nil, ErrInternal
	}

	s.publishPostCreated(createdPost)

	return createdPost, nil
}

func (s *postService) publishPostCreated(post *model.Post) {
	if s.mq == nil {
		return
	}

	msg := dto.MQPostCreatedMsg{
		PostID:    post.ID.Hex(),
		UserID:    post.User.ID.Hex(),
		PostTitle: post.Title,
		CreatedAt: post.PublishedDate,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		s.logger.Sugar().Errorf("failed to marshal post-created message: %s", err.Error())
		return
	}

	if err := s.mq.PublishJSON(rabbitmq.POST_CREATED_QUEUE, body); err != nil {
		s.logger.Sugar().Errorf("failed to publish post(%s) created message: %s", post.ID.Hex(), err.Error())
	}
}

func (s *postService) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	post, err := s.repo.Mongo.Post.FindByID(ctx, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%s): %s", id.Hex(), err.Error())
		return nil, ErrInternal
	}

	post.Body = utils.SanitizeRichText(post.Body)
	go s.incrViews(post.ID)

	return post, nil
}

func (s *postService) incrViews(postID primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.repo.Mongo.Post.IncrViews(ctx, postID); err != nil {
		s.logger.Sugar().Errorf("failed to increment views for post(%s): %s", postID.Hex(), err.Error())
	}
}

func (s *postService) FindLatest(ctx context.Context, tag string, q dto.ListQuery) (*dto.PostList, error) {
	return s.list(ctx, mongodb.PostFilter{Tag: tag}, mongodb.SortLatest, q)
}

func (s *postService) FindHot(ctx context.Context, tag string, q dto.ListQuery) (*dto.PostList, error) {
	return s.list(ctx, mongodb.PostFilter{Tag: tag}, mongodb.SortHot, q)
}

func (s *postService) FindByCategory(ctx context.Context, category string, q dto.ListQuery) (*dto.PostList, error) {
	return s.list(ctx, mongodb.PostFilter{Category: category}, mongodb.SortLatest, q)
}

func (s *postService) FindByAuthor(ctx context.Context, authorID primitive.ObjectID, q dto.ListQuery) (*dto.PostList, error) {
	return s.list(ctx, mongodb.PostFilter{AuthorID: &authorID}, mongodb.SortLatest, q)
}

func (s *postService) FindFeed(ctx context.Context, followingIDs []primitive.ObjectID, q dto.ListQuery) (*dto.PostList, error) {
	if len(followingIDs) == 0 {
		return dto.NewPostList(0, nil), nil
	}
	return s.list(ctx, mongodb.PostFilter{AuthorIn: followingIDs}, mongodb.SortLatest, q)
}

func (s *postService) FindOrdered(ctx context.Context, orderBy string, q dto.ListQuery) (*dto.PostList, error) {
	return s.list(ctx, mongodb.PostFilter{}, mongodb.ParseSortMode(orderBy), q)
}

func (s *postService) Like(ctx context.Context, postID, userID primitive.ObjectID) (*model.Post, error) {
	liked, err := s.repo.Mongo.Post.HasPostLike(ctx, postID, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check post(%s) like for user(%s): %s", postID.Hex(), userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	post, err := s.repo.Mongo.Post.LikePost(ctx, postID, userID, liked)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to toggle post(%s) like for user(%s): %s", postID.Hex(), userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

// list executes one listing query and shapes the fixed response envelope.
// Bodies are stripped to plain text for list previews.
func (s *postService) list(ctx context.Context, filter mongodb.PostFilter, sort mongodb.SortMode, q dto.ListQuery) (*dto.PostList, error) {
	posts, total, err := s.repo.Mongo.Post.FindPage(ctx, filter, sort, q.PostNum, q.Skip())
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts page(%d): %s", q.Page, err.Error())
		return nil, ErrInternal
	}

	return dto.NewPostList(total, stripBodies(posts)), nil
}

func stripBodies(posts []model.Post) []model.Post {
	for i := range posts {
		posts[i].Body = utils.StripHTML(posts[i].Body)
	}
	return posts
}
