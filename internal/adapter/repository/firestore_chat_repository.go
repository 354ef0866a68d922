package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"chatapp/internal/domain/entity"
	"chatapp/internal/domain/repository"
	"chatapp/pkg/errors"
	"chatapp/pkg/logger"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

// CreateDirect runs a single transaction: read the chat document at its
// combined ID, abort with CONFLICT if it already exists, otherwise write the
// chat and union its ID onto both members' chatRefs. The array-union keeps
// chatRefs duplicate-free even if the transaction is retried.
func (r *firestoreChatRepository) CreateDirect(ctx context.Context, chat *entity.Chat) error {
	chat.CreatedAt = time.Now()
	chatRef := r.client.Collection("chats").Doc(chat.ID)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(chatRef)
		if err == nil {
			return errors.Conflict("Chat already exists")
		}
		if status.Code(err) != codes.NotFound {
			return errors.Internal("Failed to read chat", err)
		}

		if err := tx.Set(chatRef, chat); err != nil {
			return errors.Internal("Failed to create chat", err)
		}

		for memberID := range chat.Members {
			userRef := r.client.Collection("users").Doc(memberID)
			err := tx.Update(userRef, []firestore.Update{
				{Path: "chatRefs", Value: firestore.ArrayUnion(chat.ID)},
			})
			if err != nil {
				return errors.Internal("Failed to link chat to user", err)
			}
		}

		return nil
	})
}

func (r *firestoreChatRepository) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	doc, err := r.client.Collection("chats").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat", err)
		}
		return nil, errors.Internal("Failed to get chat", err)
	}

	var chat entity.Chat
	if err := doc.DataTo(&chat); err != nil {
		return nil, errors.Internal("Failed to parse chat data", err)
	}

	return &chat, nil
}

// ListByUserID reads the user's chatRefs and every referenced chat inside one
// read-only transaction so the list and the chats come from a consistent
// snapshot. Dangling references are skipped.
func (r *firestoreChatRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Chat, error) {
	var chats []*entity.Chat

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		chats = nil

		userSnap, err := tx.Get(r.client.Collection("users").Doc(userID))
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("User", err)
			}
			return errors.Internal("Failed to get user", err)
		}

		var user entity.User
		if err := userSnap.DataTo(&user); err != nil {
			return errors.Internal("Failed to parse user data", err)
		}

		if len(user.ChatRefs) == 0 {
			return nil
		}

		refs := make([]*firestore.DocumentRef, 0, len(user.ChatRefs))
		for _, chatID := range user.ChatRefs {
			refs = append(refs, r.client.Collection("chats").Doc(chatID))
		}

		snaps, err := tx.GetAll(refs)
		if err != nil {
			return errors.Internal("Failed to fetch chats", err)
		}

		for _, snap := range snaps {
			if !snap.Exists() {
				logger.Warn("Dangling chat reference %s on user %s", snap.Ref.ID, userID)
				continue
			}

			var chat entity.Chat
			if err := snap.DataTo(&chat); err != nil {
				logger.Warn("Skipping malformed chat document %s: %v", snap.Ref.ID, err)
				continue
			}
			chats = append(chats, &chat)
		}

		return nil
	}, firestore.ReadOnly)

	if err != nil {
		return nil, err
	}

	return chats, nil
}

// CreateMessage commits the message document and the parent chat's
// denormalized lastMessage in one batched write, so neither is ever observable
// without the other.
func (r *firestoreChatRepository) CreateMessage(ctx context.Context, chatID string, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	chatRef := r.client.Collection("chats").Doc(chatID)
	messageRef := chatRef.Collection("messages").Doc(message.ID)

	batch := r.client.Batch()
	batch.Set(messageRef, message)
	batch.Update(chatRef, []firestore.Update{
		{Path: "lastMessage", Value: message},
	})

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to send message", err)
	}

	return nil
}

func (r *firestoreChatRepository) GetMessageByID(ctx context.Context, chatID, messageID string) (*entity.Message, error) {
	doc, err := r.client.Collection("chats").Doc(chatID).Collection("messages").Doc(messageID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}

	return &message, nil
}

// ListMessages returns up to limit messages in descending createdAt order.
// When before is set, the page resumes strictly after its timestamp, i.e. with
// messages older than the cursor.
func (r *firestoreChatRepository) ListMessages(ctx context.Context, chatID string, limit int, before *entity.Message) ([]*entity.Message, error) {
	query := r.client.Collection("chats").Doc(chatID).Collection("messages").
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)

	if before != nil {
		query = query.StartAfter(before.CreatedAt)
	}

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
