package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeehoo0767/dru-backend/internal/dto"
	"github.com/jeehoo0767/dru-backend/internal/service"
)

// errorResponse maps service errors onto HTTP status codes: missing entities
// are 404, everything else is an internal fault.
func (h *Handler) errorResponse(c *gin.Context, err error) {
	switch err {
	case service.ErrPostNotFound, service.ErrCommentNotFound, service.ErrReplyNotFound, service.ErrUserNotFound:
		c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
	}
}
