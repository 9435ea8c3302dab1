package router

import (
	"github.com/labstack/echo/v4"

	"nearbuy/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupLocationRouter(e, authMiddleware)
	SetupPostRouter(e, authMiddleware)
	SetupReplyRouter(e, authMiddleware)
	SetupMessageRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
