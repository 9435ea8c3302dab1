package router

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/adapter/api/handler"
	"nearbuy/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.Use(authMiddleware.Authenticate)
	auth.POST("/register", authHandler.Register)
	auth.GET("/me", authHandler.GetMe)
}
