package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeehoo0767/dru-backend/internal/dto"
)

func (h *Handler) search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errSearchQueryRequired.Error()))
		return
	}

	listQuery, err := dto.ParseListQuery(c.Query("page"), c.Query("postNum"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	list, err := h.services.Search.Search(c.Request.Context(), dto.SearchQuery{
		Q:             q,
		OrderBy:       c.Query("orderBy"),
		DiseasePeriod: c.Query("diseasePeriod"),
		ListQuery:     listQuery,
	})
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
