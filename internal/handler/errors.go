package handler

import "errors"

var (
	errNotAuthorized       = errors.New("user is not authorized")
	errInvalidPostID       = errors.New("invalid post ID")
	errInvalidCommentID    = errors.New("invalid comment ID")
	errInvalidReplyID      = errors.New("invalid reply ID")
	errInvalidUserID       = errors.New("invalid user ID")
	errCategoryRequired    = errors.New("category is required")
	errSearchQueryRequired = errors.New("q is required")
)
