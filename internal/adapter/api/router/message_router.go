package router

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/adapter/api/handler"
	"nearbuy/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	messageHandler := handler.GetMessageHandler()

	postMessages := e.Group("/v1/posts/:id/messages")
	postMessages.Use(authMiddleware.Authenticate)
	postMessages.POST("", messageHandler.CreateMessage)
	postMessages.GET("", messageHandler.GetPostMessages)

	threads := e.Group("/v1/threads")
	threads.Use(authMiddleware.Authenticate)
	threads.GET("", messageHandler.GetUserThreads)
	threads.GET("/:id", messageHandler.GetThreadMessages)
}
