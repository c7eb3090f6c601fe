package service

import (
	"context"
	"errors"
	"sync"

	"github.com/jeehoo0767/dru-backend/internal/model"
	"github.com/jeehoo0767/dru-backend/internal/repository"
	"github.com/jeehoo0767/dru-backend/internal/repository/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// fakePostRepo mirrors the document-store semantics of the mongodb post repo
// in memory: one post document per id, comments and replies embedded, update
// operators applied atomically per post. The mutex stands in for the store's
// per-document atomicity, since the services fire background writes.
type fakePostRepo struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]*model.Post

	// canned listing results
	pagePosts []model.Post
	pageTotal int64
	pageErr   error

	// recorded FindPage arguments
	lastFilter mongodb.PostFilter
	lastSort   mongodb.SortMode
	lastLimit  int
	lastSkip   int
}

func newFakePostRepo(posts ...*model.Post) *fakePostRepo {
	m := make(map[primitive.ObjectID]*model.Post, len(posts))
	for _, p := range posts {
		m[p.ID] = p
	}
	return &fakePostRepo{posts: m}
}

func (f *fakePostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post.ID = primitive.NewObjectID()
	post.LikeMe = []primitive.ObjectID{}
	post.Comments = []model.Comment{}
	f.posts[post.ID] = &post
	copied := post
	return &copied, nil
}

func (f *fakePostRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) FindPage(ctx context.Context, filter mongodb.PostFilter, sort mongodb.SortMode, limit int, skip int) ([]model.Post, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastFilter = filter
	f.lastSort = sort
	f.lastLimit = limit
	f.lastSkip = skip
	if f.pageErr != nil {
		return nil, 0, f.pageErr
	}
	return f.pagePosts, f.pageTotal, nil
}

func (f *fakePostRepo) IncrViews(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if post, ok := f.posts[id]; ok {
		post.Views++
	}
	return nil
}

func (f *fakePostRepo) HasPostLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return false, nil
	}
	return containsID(post.LikeMe, userID), nil
}

func (f *fakePostRepo) LikePost(ctx context.Context, postID, userID primitive.ObjectID, unlike bool) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if unlike {
		post.LikeMe = removeID(post.LikeMe, userID)
		post.Likes--
	} else {
		if !containsID(post.LikeMe, userID) {
			post.LikeMe = append(post.LikeMe, userID)
		}
		post.Likes++
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) PushComment(ctx context.Context, postID primitive.ObjectID, comment model.Comment) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	post.Comments = append(post.Comments, comment)
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) SetCommentText(ctx context.Context, commentID primitive.ObjectID, text string) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, post := range f.posts {
		for i := range post.Comments {
			if post.Comments[i].ID == commentID {
				post.Comments[i].Text = text
				copied := *post
				return &copied, nil
			}
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostRepo) PullComment(ctx context.Context, postID, commentID primitive.ObjectID) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	kept := post.Comments[:0]
	for _, comment := range post.Comments {
		if comment.ID != commentID {
			kept = append(kept, comment)
		}
	}
	post.Comments = kept
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) HasCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, post := range f.posts {
		for i := range post.Comments {
			if post.Comments[i].ID == commentID {
				return containsID(post.Comments[i].LikeMe, userID), nil
			}
		}
	}
	return false, nil
}

func (f *fakePostRepo) LikeComment(ctx context.Context, postID, commentID, userID primitive.ObjectID, unlike bool) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for i := range post.Comments {
		if post.Comments[i].ID != commentID {
			continue
		}
		if unlike {
			post.Comments[i].LikeMe = removeID(post.Comments[i].LikeMe, userID)
			post.Comments[i].Likes--
		} else {
			if !containsID(post.Comments[i].LikeMe, userID) {
				post.Comments[i].LikeMe = append(post.Comments[i].LikeMe, userID)
			}
			post.Comments[i].Likes++
		}
		copied := *post
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostRepo) PushReply(ctx context.Context, postID, commentID primitive.ObjectID, reply model.Reply) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for i := range post.Comments {
		if post.Comments[i].ID == commentID {
			post.Comments[i].Replies = append(post.Comments[i].Replies, reply)
			copied := *post
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostRepo) SetReplyText(ctx context.Context, postID, commentID, replyID primitive.ObjectID, text string) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for i := range post.Comments {
		if post.Comments[i].ID != commentID {
			continue
		}
		for j := range post.Comments[i].Replies {
			if post.Comments[i].Replies[j].ID == replyID {
				post.Comments[i].Replies[j].Text = text
				copied := *post
				return &copied, nil
			}
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostRepo) PullReply(ctx context.Context, postID, commentID, replyID primitive.ObjectID) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for i := range post.Comments {
		if post.Comments[i].ID != commentID {
			continue
		}
		kept := post.Comments[i].Replies[:0]
		for _, reply := range post.Comments[i].Replies {
			if reply.ID != replyID {
				kept = append(kept, reply)
			}
		}
		post.Comments[i].Replies = kept
	}
	copied := *post
	return &copied, nil
}

func (f *fakePostRepo) HasReplyLike(ctx context.Context, replyID, userID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, post := range f.posts {
		for i := range post.Comments {
			for j := range post.Comments[i].Replies {
				if post.Comments[i].Replies[j].ID == replyID {
					return containsID(post.Comments[i].Replies[j].LikeMe, userID), nil
				}
			}
		}
	}
	return false, nil
}

func (f *fakePostRepo) LikeReply(ctx context.Context, postID, commentID, replyID, userID primitive.ObjectID, unlike bool) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for i := range post.Comments {
		if post.Comments[i].ID != commentID {
			continue
		}
		for j := range post.Comments[i].Replies {
			if post.Comments[i].Replies[j].ID != replyID {
				continue
			}
			if unlike {
				post.Comments[i].Replies[j].LikeMe = removeID(post.Comments[i].Replies[j].LikeMe, userID)
				post.Comments[i].Replies[j].Likes--
			} else {
				if !containsID(post.Comments[i].Replies[j].LikeMe, userID) {
					post.Comments[i].Replies[j].LikeMe = append(post.Comments[i].Replies[j].LikeMe, userID)
				}
				post.Comments[i].Replies[j].Likes++
			}
			copied := *post
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePostRepo) get(id primitive.ObjectID) model.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.posts[id]
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}

// fakeSearchTermRepo records terms; terms listed in failOn return an error.
type fakeSearchTermRepo struct {
	mu       sync.Mutex
	recorded []string
	failOn   map[string]bool
}

func (f *fakeSearchTermRepo) RecordOccurrence(ctx context.Context, term string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failOn[term] {
		return errors.New("write failed")
	}
	f.recorded = append(f.recorded, term)
	return nil
}

func (f *fakeSearchTermRepo) Recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.recorded...)
}

func testRepository(post mongodb.Post, terms mongodb.SearchTerm) *repository.Repository {
	return &repository.Repository{
		Mongo: &mongodb.MongoRepository{
			Post:       post,
			SearchTerm: terms,
		},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
