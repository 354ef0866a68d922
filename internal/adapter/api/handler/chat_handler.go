package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"chatapp/internal/domain/entity"
	"chatapp/internal/usecase"
	"chatapp/pkg/errors"
	"chatapp/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createChatRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// CreateChat creates a direct chat with the recipient. The data layer signals
// an already-existing chat as a conflict; that case is treated as success and
// the existing chat is returned instead.
func (h *ChatHandler) CreateChat(c echo.Context) error {
	var req createChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	chat, err := h.chatUseCase.CreateChat(c.Request().Context(), userID, req.RecipientID)
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			existing, getErr := h.chatUseCase.GetChatByID(c.Request().Context(), entity.CombinedChatID(userID, req.RecipientID))
			if getErr != nil {
				return response.Error(c, getErr)
			}
			return response.Success(c, existing)
		}
		return response.Error(c, err)
	}

	return response.Created(c, chat)
}

func (h *ChatHandler) ListChats(c echo.Context) error {
	userID := c.Get("uid").(string)

	chats, err := h.chatUseCase.ListChats(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chats)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	chatID := c.Param("id")

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), chatID, userID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// GetMessages returns a page of messages, newest first. The before query
// parameter names the last message of the previous page.
func (h *ChatHandler) GetMessages(c echo.Context) error {
	chatID := c.Param("id")

	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	messages, err := h.chatUseCase.FetchMessages(c.Request().Context(), chatID, limit, c.QueryParam("before"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}
