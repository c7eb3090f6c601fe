package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReplyCreate(t *testing.T) {
	post := seedPost()
	repo := newFakePostRepo(post)
	comments := newCommentService(testLogger(), testRepository(repo, nil))
	replies := newReplyService(testLogger(), testRepository(repo, nil))

	updated, err := comments.Create(context.Background(), post.ID, seedAuthor(), "parent")
	require.NoError(t, err)
	commentID := updated.Comments[0].ID

	author := seedAuthor()
	updated, err = replies.Create(context.Background(), post.ID, commentID, author, "child")
	require.NoError(t, err)
	require.Len(t, updated.Comments[0].Replies, 1)

	reply := updated.Comments[0].Replies[0]
	assert.False(t, reply.ID.IsZero())
	assert.Equal(t, commentID, reply.CommentID)
	assert.Equal(t, "child", reply.Text)
	assert.Equal(t, int64(0), reply.Likes)
	assert.Empty(t, reply.LikeMe)
	assert.Equal(t, author.ID, reply.User.ID)

	_, err = replies.Create(context.Background(), post.ID, primitive.NewObjectID(), author, "orphan")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestReplyUpdateText(t *testing.T) {
	post := seedPost()
	repo := newFakePostRepo(post)
	comments := newCommentService(testLogger(), testRepository(repo, nil))
	replies := newReplyService(testLogger(), testRepository(repo, nil))

	updated, err := comments.Create(context.Background(), post.ID, seedAuthor(), "parent")
	require.NoError(t, err)
	commentID := updated.Comments[0].ID

	updated, err = replies.Create(context.Background(), post.ID, commentID, seedAuthor(), "before")
	require.NoError(t, err)
	replyID := updated.Comments[0].Replies[0].ID

	updated, err = replies.UpdateText(context.Background(), post.ID, commentID, replyID, "after")
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Comments[0].Replies[0].Text)

	_, err = replies.UpdateText(context.Background(), post.ID, commentID, primitive.NewObjectID(), "x")
	assert.ErrorIs(t, err, ErrReplyNotFound)
}

func TestReplyDelete(t *testing.T) {
	post := seedPost()
	repo := newFakePostRepo(post)
	comments := newCommentService(testLogger(), testRepository(repo, nil))
	replies := newReplyService(testLogger(), testRepository(repo, nil))

	updated, err := comments.Create(context.Background(), post.ID, seedAuthor(), "parent")
	require.NoError(t, err)
	commentID := updated.Comments[0].ID

	updated, err = replies.Create(context.Background(), post.ID, commentID, seedAuthor(), "gone soon")
	require.NoError(t, err)
	replyID := updated.Comments[0].Replies[0].ID

	require.NoError(t, replies.Delete(context.Background(), post.ID, commentID, replyID))
	assert.Empty(t, repo.get(post.ID).Comments[0].Replies)

	// idempotent on an already removed id
	require.NoError(t, replies.Delete(context.Background(), post.ID, commentID, replyID))

	err = replies.Delete(context.Background(), primitive.NewObjectID(), commentID, replyID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestReplyLikeToggle(t *testing.T) {
	post := seedPost()
	repo := newFakePostRepo(post)
	comments := newCommentService(testLogger(), testRepository(repo, nil))
	replies := newReplyService(testLogger(), testRepository(repo, nil))

	updated, err := comments.Create(context.Background(), post.ID, seedAuthor(), "parent")
	require.NoError(t, err)
	commentID := updated.Comments[0].ID

	updated, err = replies.Create(context.Background(), post.ID, commentID, seedAuthor(), "like me")
	require.NoError(t, err)
	replyID := updated.Comments[0].Replies[0].ID

	user := primitive.NewObjectID()

	updated, err = replies.Like(context.Background(), post.ID, commentID, replyID, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Comments[0].Replies[0].Likes)
	assert.Contains(t, updated.Comments[0].Replies[0].LikeMe, user)

	updated, err = replies.Like(context.Background(), post.ID, commentID, replyID, user)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Comments[0].Replies[0].Likes)
	assert.Empty(t, updated.Comments[0].Replies[0].LikeMe)

	_, err = replies.Like(context.Background(), post.ID, commentID, primitive.NewObjectID(), user)
	assert.ErrorIs(t, err, ErrReplyNotFound)
}
