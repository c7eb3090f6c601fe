package service

import (
	"context"

	"github.com/jeehoo0767/dru-backend/internal/model"
	"github.com/jeehoo0767/dru-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type replyService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newReplyService(logger *zap.Logger, repo *repository.Repository) Reply {
	return &replyService{
		logger: logger,
		repo:   repo,
	}
}

func (s *replyService) Create(ctx context.Context, postID, commentID primitive.ObjectID, author model.CachedUser, text string) (*model.Post, error) {
	reply := model.Reply{
		ID:        primitive.NewObjectID(),
		CommentID: commentID,
		Text:      text,
		Likes:     0,
		LikeMe:    []primitive.ObjectID{},
		User:      author.Snapshot(),
	}

	post, err := s.repo.Mongo.Post.PushReply(ctx, postID, commentID, reply)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to push reply to comment(%s): %s", commentID.Hex(), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *replyService) UpdateText(ctx context.Context, postID, commentID, replyID primitive.ObjectID, text string) (*model.Post, error) {
	post, err := s.repo.Mongo.Post.SetReplyText(ctx, postID, commentID, replyID, text)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReplyNotFound
		}

		s.logger.Sugar().Errorf("failed to update reply(%s) text: %s", replyID.Hex(), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *replyService) Delete(ctx context.Context, postID, commentID, replyID primitive.ObjectID) error {
	if _, err := s.repo.Mongo.Post.PullReply(ctx, postID, commentID, replyID); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to delete reply(%s) from comment(%s): %s", replyID.Hex(), commentID.Hex(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *replyService) Like(ctx context.Context, postID, commentID, replyID, userID primitive.ObjectID) (*model.Post, error) {
	liked, err := s.repo.Mongo.Post.HasReplyLike(ctx, replyID, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to check reply(%s) like for user(%s): %s", replyID.Hex(), userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	post, err := s.repo.Mongo.Post.LikeReply(ctx, postID, commentID, replyID, userID, liked)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReplyNotFound
		}

		s.logger.Sugar().Errorf("failed to toggle reply(%s) like for user(%s): %s", replyID.Hex(), userID.Hex(), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}
