package router

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/adapter/api/handler"
	"nearbuy/internal/adapter/api/middleware"
)

func SetupReplyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	replyHandler := handler.GetReplyHandler()

	replies := e.Group("/v1/posts/:id/replies")
	replies.Use(authMiddleware.Authenticate)
	replies.POST("", replyHandler.CreateReply)
	replies.GET("", replyHandler.ListPostReplies)
	replies.POST("/:replyId/accept", replyHandler.AcceptReply)
}
