package repository

import (
	"context"

	"chatapp/internal/domain/entity"
)

type ChatRepository interface {
	// CreateDirect writes a new two-party chat and links it onto both members'
	// chatRefs in a single transaction. Returns a CONFLICT error when a chat
	// with the same ID already exists.
	CreateDirect(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Chat, error)

	// Message methods
	CreateMessage(ctx context.Context, chatID string, message *entity.Message) error
	GetMessageByID(ctx context.Context, chatID, messageID string) (*entity.Message, error)
	ListMessages(ctx context.Context, chatID string, limit int, before *entity.Message) ([]*entity.Message, error)
}
