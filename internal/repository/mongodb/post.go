package mongodb

import (
	"context"
	"time"

	"github.com/jeehoo0767/dru-backend/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type postRepo struct {
	db *mongo.Database
}

func newPostRepo(db *mongo.Database) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) posts() *mongo.Collection {
	return r.db.Collection(postsCollection)
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	post.ID = primitive.NewObjectID()
	post.Views = 0
	post.Likes = 0
	post.LikeMe = []primitive.ObjectID{}
	post.Comments = []model.Comment{}
	if post.PublishedDate.IsZero() {
		post.PublishedDate = time.Now()
	}

	if _, err := r.posts().InsertOne(ctx, post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	if err := r.posts().FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}

	return &post, nil
}

// FindPage runs the filtered, sorted, paginated listing query plus a count
// query over the same filter. Items and count come from the same logical
// filter but not from one snapshot; staleness under concurrent writes is
// accepted.
func (r *postRepo) FindPage(ctx context.Context, filter PostFilter, sort SortMode, limit int, skip int) ([]model.Post, int64, error) {
	maxLimit(&limit)

	query := filter.build()
	opts := options.Find().
		SetSort(sort.sortDoc()).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))

	cursor, err := r.posts().Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, err
	}

	total, err := r.posts().CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postRepo) IncrViews(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.posts().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

func (r *postRepo) HasPostLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error) {
	count, err := r.posts().CountDocuments(ctx, bson.M{"_id": postID, "likeMe": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepo) LikePost(ctx context.Context, postID, userID primitive.ObjectID, unlike bool) (*model.Post, error) {
	update := bson.M{
		"$addToSet": bson.M{"likeMe": userID},
		"$inc":      bson.M{"likes": 1},
	}
	if unlike {
		update = bson.M{
			"$pull": bson.M{"likeMe": userID},
			"$inc":  bson.M{"likes": -1},
		}
	}

	return r.findOneAndUpdate(ctx, bson.M{"_id": postID}, update, nil)
}

func (r *postRepo) PushComment(ctx context.Context, postID primitive.ObjectID, comment model.Comment) (*model.Post, error) {
	return r.findOneAndUpdate(
		ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}},
		nil,
	)
}

func (r *postRepo) SetCommentText(ctx context.Context, commentID primitive.ObjectID, text string) (*model.Post, error) {
	return r.findOneAndUpdate(
		ctx,
		bson.M{"comments._id": commentID},
		bson.M{"$set": bson.M{"comments.$.text": text}},
		nil,
	)
}

func (r *postRepo) PullComment(ctx context.Context, postID, commentID primitive.ObjectID) (*model.Post, error) {
	return r.findOneAndUpdate(
		ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}},
		nil,
	)
}

func (r *postRepo) HasCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (bool, error) {
	count, err := r.posts().CountDocuments(ctx, bson.M{
		"comments": bson.M{"$elemMatch": bson.M{"_id": commentID, "likeMe": userID}},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LikeComment records or withdraws a like in one atomic update, keeping the
// likeMe set and the likes counter in step.
func (r *postRepo) LikeComment(ctx context.Context, postID, commentID, userID primitive.ObjectID, unlike bool) (*model.Post, error) {
	update := bson.M{
		"$addToSet": bson.M{"comments.$.likeMe": userID},
		"$inc":      bson.M{"comments.$.likes": 1},
	}
	if unlike {
		update = bson.M{
			"$pull": bson.M{"comments.$.likeMe": userID},
			"$inc":  bson.M{"comments.$.likes": -1},
		}
	}

	return r.findOneAndUpdate(
		ctx,
		bson.M{"_id": postID, "comments._id": commentID},
		update,
		nil,
	)
}

func (r *postRepo) PushReply(ctx context.Context, postID, commentID primitive.ObjectID, reply model.Reply) (*model.Post, error) {
	return r.findOneAndUpdate(
		ctx,
		bson.M{"_id": postID, "comments._id": commentID},
		bson.M{"$push": bson.M{"comments.$[c].replies": reply}},
		[]interface{}{bson.M{"c._id": commentID}},
	)
}

func (r *postRepo) SetReplyText(ctx context.Context, postID, commentID, replyID primitive.ObjectID, text string) (*model.Post, error) {
	return r.findOneAndUpdate(
		ctx,
		bson.M{
			"_id":      postID,
			"comments": bson.M{"$elemMatch": bson.M{"_id": commentID, "replies._id": replyID}},
		},
		bson.M{"$set": bson.M{"comments.$[c].replies.$[r].text": text}},
		[]interface{}{bson.M{"c._id": commentID}, bson.M{"r._id": replyID}},
	)
}

func (r *postRepo) PullReply(ctx context.Context, postID, commentID, replyID primitive.ObjectID) (*model.Post, error) {
	return r.findOneAndUpdate(
		ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments.$[c].replies": bson.M{"_id": replyID}}},
		[]interface{}{bson.M{"c._id": commentID}},
	)
}

func (r *postRepo) HasReplyLike(ctx context.Context, replyID, userID primitive.ObjectID) (bool, error) {
	count, err := r.posts().CountDocuments(ctx, bson.M{
		"comments.replies": bson.M{"$elemMatch": bson.M{"_id": replyID, "likeMe": userID}},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *postRepo) LikeReply(ctx context.Context, postID, commentID, replyID, userID primitive.ObjectID, unlike bool) (*model.Post, error) {
	update := bson.M{
		"$addToSet": bson.M{"comments.$[c].replies.$[r].likeMe": userID},
		"$inc":      bson.M{"comments.$[c].replies.$[r].likes": 1},
	}
	if unlike {
		update = bson.M{
			"$pull": bson.M{"comments.$[c].replies.$[r].likeMe": userID},
			"$inc":  bson.M{"comments.$[c].replies.$[r].likes": -1},
		}
	}

	return r.findOneAndUpdate(
		ctx,
		bson.M{
			"_id":      postID,
			"comments": bson.M{"$elemMatch": bson.M{"_id": commentID, "replies._id": replyID}},
		},
		update,
		[]interface{}{bson.M{"c._id": commentID}, bson.M{"r._id": replyID}},
	)
}

// findOneAndUpdate applies one atomic update to a single post document and
// returns the post as it looks after the update. A non-matching filter
// surfaces as mongo.ErrNoDocuments.
func (r *postRepo) findOneAndUpdate(ctx context.Context, filter bson.M, update bson.M, arrayFilters []interface{}) (*model.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if arrayFilters != nil {
		opts = opts.SetArrayFilters(options.ArrayFilters{Filters: arrayFilters})
	}

	var post model.Post
	if err := r.posts().FindOneAndUpdate(ctx, filter, update, opts).Decode(&post); err != nil {
		return nil, err
	}

	return &post, nil
}
