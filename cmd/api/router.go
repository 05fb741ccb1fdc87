package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"board-backend/internal/shared/middleware"
	"board-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.Auth(c.JWTManager)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		v1.POST("/auth/register", c.AuthorHandler.Register)
		v1.POST("/auth/login", c.AuthorHandler.Login)

		authors := v1.Group("/authors", auth)
		{
			authors.GET("/me", c.AuthorHandler.GetProfile)
			authors.PATCH("/me", c.AuthorHandler.UpdateProfile)
		}

		articles := v1.Group("/articles")
		{
			articles.GET("", c.ArticleHandler.Search)
			articles.GET("/:id", c.ArticleHandler.Get)
			articles.GET("/:id/comments", c.CommentHandler.ListByArticle)

			articles.POST("", auth, c.ArticleHandler.Create)
			articles.PATCH("/:id", auth, c.ArticleHandler.Update)
			articles.DELETE("/:id", auth, c.ArticleHandler.Delete)
			articles.POST("/:id/comments", auth, c.CommentHandler.Create)
		}

		v1.DELETE("/comments/:id", auth, c.CommentHandler.Delete)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "up",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}
