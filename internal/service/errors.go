package service

import "errors"

var (
	ErrInternal        = errors.New("internal server error")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrReplyNotFound   = errors.New("reply not found")
	ErrUserNotFound    = errors.New("user not found")
)
