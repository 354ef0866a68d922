package usecase

import (
	"context"

	"chatapp/internal/domain/entity"
	"chatapp/internal/domain/repository"
	"chatapp/pkg/errors"
)

type ChatUseCase struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository

	// legacyPagination reproduces the historical client behavior of discarding
	// the first message of every fetched page.
	legacyPagination bool
}

func NewChatUseCase(chatRepo repository.ChatRepository, userRepo repository.UserRepository, legacyPagination bool) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:         chatRepo,
		userRepo:         userRepo,
		legacyPagination: legacyPagination,
	}
}

// CreateChat resolves both profiles and writes the chat under its combined ID.
// A second call for the same pair, in either order, surfaces a CONFLICT error;
// callers treat that as success-equivalent since the chat they asked for
// already exists.
func (uc *ChatUseCase) CreateChat(ctx context.Context, userID, recipientID string) (*entity.Chat, error) {
	if userID == recipientID {
		return nil, errors.BadRequest("You cannot create a chat with yourself", nil)
	}

	initiator, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipient, err := uc.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	chat := &entity.Chat{
		ID: entity.CombinedChatID(initiator.ID, recipient.ID),
		Members: map[string]entity.ChatMember{
			initiator.ID: {
				ID:       initiator.ID,
				Username: initiator.Username,
				PhotoURL: initiator.PhotoURL,
			},
			recipient.ID: {
				ID:       recipient.ID,
				Username: recipient.Username,
				PhotoURL: recipient.PhotoURL,
			},
		},
	}

	if err := uc.chatRepo.CreateDirect(ctx, chat); err != nil {
		return nil, err
	}

	return chat, nil
}

func (uc *ChatUseCase) GetChatByID(ctx context.Context, id string) (*entity.Chat, error) {
	return uc.chatRepo.GetByID(ctx, id)
}

func (uc *ChatUseCase) ListChats(ctx context.Context, userID string) ([]*entity.Chat, error) {
	return uc.chatRepo.ListByUserID(ctx, userID)
}

// SendMessage rejects senders that are not members of the chat, then delegates
// to the repository's batched write so the message and the chat's lastMessage
// land atomically.
func (uc *ChatUseCase) SendMessage(ctx context.Context, chatID, senderID, content string) (*entity.Message, error) {
	if content == "" {
		return nil, errors.BadRequest("Message content is required", nil)
	}

	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if _, ok := chat.Members[senderID]; !ok {
		return nil, errors.BadRequest("Sender is not a member of this chat", nil)
	}

	message := &entity.Message{
		SenderID: senderID,
		Content:  content,
	}

	if err := uc.chatRepo.CreateMessage(ctx, chatID, message); err != nil {
		return nil, err
	}

	return message, nil
}

// FetchMessages returns up to limit messages, newest first. When
// beforeMessageID is set, the page resumes with messages older than that
// message. Under legacy pagination the first entry of each page is dropped.
func (uc *ChatUseCase) FetchMessages(ctx context.Context, chatID string, limit int, beforeMessageID string) ([]*entity.Message, error) {
	if limit <= 0 {
		limit = 20
	}

	var before *entity.Message
	if beforeMessageID != "" {
		cursor, err := uc.chatRepo.GetMessageByID(ctx, chatID, beforeMessageID)
		if err != nil {
			return nil, err
		}
		before = cursor
	}

	messages, err := uc.chatRepo.ListMessages(ctx, chatID, limit, before)
	if err != nil {
		return nil, err
	}

	if uc.legacyPagination && len(messages) > 0 {
		messages = messages[1:]
	}

	return messages, nil
}
