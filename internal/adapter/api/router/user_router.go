package router

import (
	"github.com/labstack/echo/v4"

	"chatapp/internal/adapter/api/handler"
	"chatapp/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/me", userHandler.GetProfile)
	users.GET("/search", userHandler.SearchUsers)
}
