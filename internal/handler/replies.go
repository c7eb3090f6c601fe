package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeehoo0767/dru-backend/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) replyIDs(c *gin.Context) (postID, commentID primitive.ObjectID, ok bool) {
	postID, err0 := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("postID")))
	commentID, err1 := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("commentID")))
	if err0 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return postID, commentID, false
	}
	if err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidCommentID.Error()))
		return postID, commentID, false
	}
	return postID, commentID, true
}

func (h *Handler) replyWrite(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postID, commentID, ok := h.replyIDs(c)
	if !ok {
		return
	}

	var input dto.WriteReplyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Reply.Create(c.Request.Context(), postID, commentID, *user, input.Text)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) replyUpdate(c *gin.Context) {
	postID, commentID, ok := h.replyIDs(c)
	if !ok {
		return
	}

	replyID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("replyID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidReplyID.Error()))
		return
	}

	var input dto.WriteReplyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Reply.UpdateText(c.Request.Context(), postID, commentID, replyID, input.Text)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) replyDelete(c *gin.Context) {
	postID, commentID, ok := h.replyIDs(c)
	if !ok {
		return
	}

	replyID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("replyID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidReplyID.Error()))
		return
	}

	if err := h.services.Reply.Delete(c.Request.Context(), postID, commentID, replyID); err != nil {
		h.errorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) replyLike(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postID, commentID, ok := h.replyIDs(c)
	if !ok {
		return
	}

	replyID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("replyID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidReplyID.Error()))
		return
	}

	post, err := h.services.Reply.Like(c.Request.Context(), postID, commentID, replyID, user.ID)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}
