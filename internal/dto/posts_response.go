package dto

import "github.com/jeehoo0767/dru-backend/internal/model"

// PostList is the fixed listing envelope: {postTotalCnt, data:{post:[...]}}.
type PostList struct {
	PostTotalCnt int64        `json:"postTotalCnt"`
	Data         PostListData `json:"data"`
}

type PostListData struct {
	Post []model.Post `json:"post"`
}

func NewPostList(total int64, posts []model.Post) *PostList {
	if posts == nil {
		posts = []model.Post{}
	}
	return &PostList{
		PostTotalCnt: total,
		Data:         PostListData{Post: posts},
	}
}
