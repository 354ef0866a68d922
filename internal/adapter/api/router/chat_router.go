package router

import (
	"github.com/labstack/echo/v4"

	"chatapp/internal/adapter/api/handler"
	"chatapp/internal/adapter/api/middleware"
)

// SetupChatRouter sets up all chat-related routes
func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chatGroup := e.Group("/v1/chats")
	chatGroup.Use(authMiddleware.Authenticate)

	chatGroup.POST("", chatHandler.CreateChat)
	chatGroup.GET("", chatHandler.ListChats)

	chatGroup.POST("/:id/messages", chatHandler.SendMessage)
	chatGroup.GET("/:id/messages", chatHandler.GetMessages)
}
