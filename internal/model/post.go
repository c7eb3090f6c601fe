package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the aggregate root: comments (and their replies) live inside the
// post document and are only ever mutated through updates on the post.
type Post struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title         string               `bson:"title" json:"title"`
	Body          string               `bson:"body" json:"body"`
	Category      string               `bson:"category,omitempty" json:"category"`
	DiseasePeriod string               `bson:"diseasePeriod,omitempty" json:"diseasePeriod"`
	Views         int64                `bson:"views" json:"views"`
	Likes         int64                `bson:"likes" json:"likes"`
	LikeMe        []primitive.ObjectID `bson:"likeMe" json:"likeMe"`
	Comments      []Comment            `bson:"comments" json:"comments"`
	Tags          []string             `bson:"tags" json:"tags"`
	PublishedDate time.Time            `bson:"publishedDate" json:"publishedDate"`
	User          UserSnapshot         `bson:"user" json:"user"`
}

type Comment struct {
	ID      primitive.ObjectID   `bson:"_id" json:"_id"`
	PostID  primitive.ObjectID   `bson:"postId" json:"postId"`
	Text    string               `bson:"text" json:"text"`
	Likes   int64                `bson:"likes" json:"likes"`
	LikeMe  []primitive.ObjectID `bson:"likeMe" json:"likeMe"`
	User    UserSnapshot         `bson:"user" json:"user"`
	Replies []Reply              `bson:"replies" json:"replies"`
}

type Reply struct {
	ID        primitive.ObjectID   `bson:"_id" json:"_id"`
	CommentID primitive.ObjectID   `bson:"commentId" json:"commentId"`
	Text      string               `bson:"text" json:"text"`
	Likes     int64                `bson:"likes" json:"likes"`
	LikeMe    []primitive.ObjectID `bson:"likeMe" json:"likeMe"`
	User      UserSnapshot         `bson:"user" json:"user"`
}
