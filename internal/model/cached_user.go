package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CachedUser is the local copy of a user owned by the (external) user service,
// kept fresh through the user_info_updated queue.
type CachedUser struct {
	ID           primitive.ObjectID   `bson:"_id" json:"id"`
	Username     string               `bson:"username" json:"username"`
	DisplayName  string               `bson:"displayName" json:"display_name"`
	AvatarURL    string               `bson:"avatarUrl" json:"avatar_url"`
	FollowingIDs []primitive.ObjectID `bson:"followingIds" json:"following_ids"`
}

// UserSnapshot is the denormalized owner copy embedded into posts, comments
// and replies at creation time. It is intentionally never re-synced with
// later profile edits.
type UserSnapshot struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Username    string             `bson:"username" json:"username"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	AvatarURL   string             `bson:"avatarUrl" json:"avatarUrl"`
}

func (u CachedUser) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}
