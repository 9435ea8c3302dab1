package router

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/adapter/api/handler"
	"nearbuy/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("/:id", userHandler.GetProfile)

	me := e.Group("/v1/me")
	me.Use(authMiddleware.Authenticate)
	me.PUT("", userHandler.UpdateProfile)
	me.DELETE("", userHandler.DeleteAccount)
}
