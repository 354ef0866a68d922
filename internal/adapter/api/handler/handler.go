package handler

import (
	"chatapp/internal/usecase"
)

var (
	authHandler *AuthHandler
	userHandler *UserHandler
	chatHandler *ChatHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase, authUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
