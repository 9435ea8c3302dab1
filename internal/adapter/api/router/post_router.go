package router

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/adapter/api/handler"
	"nearbuy/internal/adapter/api/middleware"
)

func SetupPostRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	postHandler := handler.GetPostHandler()

	// Nearby search is the public browse surface.
	e.GET("/v1/posts/nearby", postHandler.Nearby)
	e.GET("/v1/posts/:id", postHandler.GetPost)

	posts := e.Group("/v1/posts")
	posts.Use(authMiddleware.Authenticate)
	posts.POST("", postHandler.CreatePost)
	posts.PATCH("/:id/status", postHandler.UpdateStatus)

	myPosts := e.Group("/v1/my-posts")
	myPosts.Use(authMiddleware.Authenticate)
	myPosts.GET("", postHandler.ListMyPosts)
}
