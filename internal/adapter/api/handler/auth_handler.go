package handler

import (
	"github.com/labstack/echo/v4"

	"chatapp/internal/usecase"
	"chatapp/pkg/errors"
	"chatapp/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  userResponse `json:"user"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token: result.Token,
		User: userResponse{
			ID:       result.User.ID,
			Username: result.User.Username,
			Email:    result.User.Email,
			PhotoURL: result.User.PhotoURL,
		},
	})
}

// Register accepts a multipart form: username, email, password and a
// profile_image file part.
func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Username string `form:"username" validate:"required,min=3"`
		Email    string `form:"email" validate:"required,email"`
		Password string `form:"password" validate:"required,min=8"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fileHeader, err := c.FormFile("profile_image")
	if err != nil {
		return response.Error(c, errors.BadRequest("profile_image is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read profile image", err))
	}
	defer file.Close()

	user, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Username:         req.Username,
		Email:            req.Email,
		Password:         req.Password,
		ProfileImage:     file,
		ImageContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		User: userResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			PhotoURL: user.PhotoURL,
		},
	})
}
