package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// notRequiredAuthMiddleware resolves the caller when a token is present but
// lets anonymous requests through. The post detail endpoint is public.
func (h *Handler) notRequiredAuthMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.Next()
		return
	}

	accessToken := strings.TrimPrefix(header, "Bearer ")
	if accessToken == "" {
		c.Next()
		return
	}

	user, err := h.getUserDataFromAccessTokenClaims(c.Request.Context(), accessToken)
	if err != nil {
		c.Next()
		return
	}

	c.Set("cached-user", *user)

	c.Next()
}
