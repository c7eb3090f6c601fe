package dto

import (
	"errors"
	"strconv"
)

const (
	DEFAULT_PAGE     = 1
	DEFAULT_POST_NUM = 10
	MAX_POST_NUM     = 50
)

var (
	ErrPageMustBeInt     = errors.New("page must be int")
	ErrPostNumMustBeInt  = errors.New("postNum must be int")
	ErrPageOutOfRange    = errors.New("page must be greater than or equal to 1")
	ErrPostNumOutOfRange = errors.New("postNum must be greater than or equal to 1")
)

// ListQuery is the validated pagination pair shared by every list endpoint.
type ListQuery struct {
	Page    int
	PostNum int
}

// ParseListQuery resolves raw page/postNum query values: page defaults to 1,
// postNum defaults to 10 and is capped at MAX_POST_NUM.
func ParseListQuery(pageStr string, postNumStr string) (ListQuery, error) {
	page := DEFAULT_PAGE
	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil {
			return ListQuery{}, ErrPageMustBeInt
		}
		page = p
	}
	if page < 1 {
		return ListQuery{}, ErrPageOutOfRange
	}

	postNum := DEFAULT_POST_NUM
	if postNumStr != "" {
		n, err := strconv.Atoi(postNumStr)
		if err != nil {
			return ListQuery{}, ErrPostNumMustBeInt
		}
		postNum = n
	}
	if postNum < 1 {
		return ListQuery{}, ErrPostNumOutOfRange
	}
	if postNum > MAX_POST_NUM {
		postNum = MAX_POST_NUM
	}

	return ListQuery{Page: page, PostNum: postNum}, nil
}

func (q ListQuery) Skip() int {
	return (q.Page - 1) * q.PostNum
}

type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required,min=2"`
	Body          string   `json:"body" binding:"required"`
	Category      string   `json:"category"`
	DiseasePeriod string   `json:"diseasePeriod"`
	Tags          []string `json:"tags"`
}

type SearchQuery struct {
	Q             string
	OrderBy       string
	DiseasePeriod string
	ListQuery
}
