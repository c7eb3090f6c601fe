package handler

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jeehoo0767/dru-backend/internal/model"
	"github.com/jeehoo0767/dru-backend/internal/service"
	"github.com/jeehoo0767/dru-backend/pkg/utils"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		posts := api.Group("/posts")
		{
			posts.GET("/latest", h.postsLatest)
			posts.GET("/hot", h.postsHot)
			posts.GET("", h.postsByCategory)
			posts.GET("/filter/:orderBy", h.postsFilter)
			posts.GET("/user/:userID", h.postsByUser)
			posts.GET("/follow", h.authMiddleware, h.postsFollow)
			posts.POST("", h.authMiddleware, h.postsCreate)
		}

		post := api.Group("/post/:postID")
		{
			post.GET("", h.notRequiredAuthMiddleware, h.postGet)
			post.POST("/like", h.authMiddleware, h.postLike)

			comment := post.Group("/comment", h.authMiddleware)
			{
				comment.POST("/write", h.commentWrite)
				comment.PATCH("/update/:commentID", h.commentUpdate)
				comment.DELETE("/delete/:commentID", h.commentDelete)
				comment.POST("/like/:commentID", h.commentLike)

				reply := comment.Group("/:commentID/reply")
				{
					reply.POST("/write", h.replyWrite)
					reply.PATCH("/update/:replyID", h.replyUpdate)
					reply.DELETE("/delete/:replyID", h.replyDelete)
					reply.POST("/like/:replyID", h.replyLike)
				}
			}
		}

		api.GET("/search", h.search)
	}

	return r
}

func (h *Handler) getUserDataFromAccessTokenClaims(ctx context.Context, accessToken string) (*model.CachedUser, error) {
	claims, err := utils.DecodeJWT(accessToken, []byte(os.Getenv("ACCESS_SECRET")))
	if err != nil {
		return nil, err
	}

	user, err := h.getUserDataFromClaims(ctx, claims, accessToken)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getUserDataFromClaims(ctx context.Context, claims jwt.MapClaims, accessToken string) (*model.CachedUser, error) {
	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := primitive.ObjectIDFromHex(idString)
	if err != nil {
		return nil, err
	}

	user, err := h.services.UserCache.CreateOrGet(ctx, id, accessToken)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (h *Handler) getCachedUserFromRequest(c *gin.Context) *model.CachedUser {
	userReq, _ := c.Get("cached-user")

	user, ok := userReq.(model.CachedUser)
	if !ok {
		return nil
	}

	return &user
}
