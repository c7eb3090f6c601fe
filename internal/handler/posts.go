package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jeehoo0767/dru-backend/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) postsLatest(c *gin.Context) {
	q, err := dto.ParseListQuery(c.Query("page"), c.Query("postNum"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	list, err := h.services.Post.FindLatest(c.Request.Context(), c.Query("tag"), q)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) postsHot(c *gin.Context) {
	q, err := dto.ParseListQuery(c.Query("page"), c.Query("postNum"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	list, err := h.services.Post.FindHot(c.Request.Context(), c.Query("tag"), q)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) postsByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errCategoryRequired.Error()))
		return
	}

	q, err := dto.ParseListQuery(c.Query("page"), c.Query("postNum"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	list, err := h.services.Post.FindByCategory(c.Request.Context(), category, q)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) postsFilter(c *gin.Context) {
	q, err := dto.ParseListQuery(c.Query("page"), c.Query("postNum"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	list, err := h.services.Post.FindOrdered(c.Request.Context(), c.Param("orderBy"), q)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) postsByUser(c *gin.Context) {
	userIDString := strings.TrimSpace(c.Param("userID"))
	userID, err := primitive.ObjectIDFromHex(userIDString)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidUserID.Error()))
		return
	}

	q, err := dto.ParseListQuery(c.Query("page"), c.Query("postNum"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	list, err := h.services.Post.FindByAuthor(c.Request.Context(), userID, q)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) postsFollow(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	q, err := dto.ParseListQuery(c.Query("page"), c.Query("postNum"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	list, err := h.services.Post.FindFeed(c.Request.Context(), user.FollowingIDs, q)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), *user, input)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postGet(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}

func (h *Handler) postLike(c *gin.Context) {
	user := h.getCachedUserFromRequest(c)

	postID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("postID")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.Like(c.Request.Context(), postID, user.ID)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, *post)
}
