package dto

import "time"

type MQPostCreatedMsg struct {
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	PostTitle string    `json:"post_title"`
	CreatedAt time.Time `json:"created_at"`
}
