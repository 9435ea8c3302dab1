package router

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/adapter/api/handler"
	"nearbuy/internal/adapter/api/middleware"
)

func SetupLocationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	locationHandler := handler.GetLocationHandler()

	location := e.Group("/v1/me/location")
	location.Use(authMiddleware.Authenticate)
	location.PUT("", locationHandler.SetLocation)
	location.GET("", locationHandler.GetMyLocation)
}
