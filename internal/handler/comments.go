package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeehoo0767/dru-backend/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) commentWrite(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	var input dto.WriteCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Comment.Create(c.Request.Context(), postID, *user, input.Text)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) commentUpdate(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("commentID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidCommentID.Error()))
		return
	}

	var input dto.WriteCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	post, err := h.services.Comment.UpdateText(c.Request.Context(), commentID, input.Text)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) commentIDs(c *gin.Context) (postID, commentID primitive.ObjectID, ok bool) {
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

func (h *Handler) commentDelete(c *gin.Context) {
	postID, commentID, ok := h.commentIDs(c)
	if !ok {
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), postID, commentID); err != nil {
		h.errorResponse(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) commentLike(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postID, commentID, ok := h.commentIDs(c)
	if !ok {
		return
	}

	post, err := h.services.Comment.Like(c.Request.Context(), postID, commentID, user.ID)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}
