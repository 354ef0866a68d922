package handler

import (
	"github.com/labstack/echo/v4"

	"chatapp/internal/usecase"
	"chatapp/pkg/errors"
	"chatapp/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	authUseCase *usecase.AuthUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, authUseCase *usecase.AuthUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		authUseCase: authUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// SearchUsers finds users by exact username; the caller is never part of the
// result.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	userID := c.Get("uid").(string)

	username := c.QueryParam("username")
	if username == "" {
		return response.Error(c, errors.BadRequest("username query parameter is required", nil))
	}

	users, err := h.userUseCase.SearchUsers(c.Request().Context(), userID, username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}
