package router

import (
	"github.com/labstack/echo/v4"

	"chatapp/internal/adapter/api/handler"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo) {
	authHandler := handler.GetAuthHandler()

	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
}
