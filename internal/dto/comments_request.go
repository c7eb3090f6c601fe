package dto

type WriteCommentRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}

type WriteReplyRequest struct {
	Text string `json:"text" binding:"required,min=1"`
}
