package service

import (
	"context"

	"github.com/jeehoo0767/dru-backend/internal/model"
	"github.com/jeehoo0767/dru-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) Create(ctx context.Context, postID primitive.ObjectID, author model.CachedUser, text string) (*model.Post, error) {
	comment := model.Comment{
		ID:      primitive.NewObjectID(),
		PostID:  postID,
		Text:    text,
		Likes:   0,
		LikeMe:  []primitive.ObjectID{},
		User:    author.Snapshot(),
		Replies: []model.Reply{},
	}

	post, err := s.repo.Mongo.Post.PushComment(ctx, postID, comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to push comment to post(%s): %s", postID.Hex(), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *commentService) UpdateText(ctx context.Context, commentID primitive.ObjectID, text string) (*model.Post, error) {
	post, err := s.repo.Mongo.Post.SetCommentText(ctx, commentID, text)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to update comment(%s) text: %s", commentID.Hex(), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

// Delete removes the comment from its post's array. Pulling an id that is no
// longer present still succeeds; only a missing parent post is NotFound.
func (s *commentService) Delete(ctx context.Context, postID, commentID primitive.ObjectID) error {
	if _, err := s.repo.Mongo.Post.PullComment(ctx, postID, commentID); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to delete comment(%s) from post(%s): %s", commentID.Hex(), postID.Hex(), err.Error())
		return ErrInternal
	}

	return nil
}

// Like toggles the caller's like. The membership check and the update are two
// round trips; the update itself adjusts the likeMe set and the counter
// atomically.
func (s *commentService) Like(ctx context.Context, postID, commentID, userID primitive.ObjectID) (*model.Post, error) {
	liked, err := s.repo.Mongo.Post.HasCommentLike(ctx, commentID, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check comment(%s) like for user(%s): %s", commentID.Hex(), userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	post, err := s.repo.Mongo.Post.LikeComment(ctx, postID, commentID, userID, liked)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to toggle comment(%s) like for user(%s): %s", commentID.Hex(), userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}
