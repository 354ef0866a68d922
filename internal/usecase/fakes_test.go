package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"chatapp/internal/domain/entity"
	"chatapp/pkg/errors"
)

// In-memory stand-ins for the Firestore repositories and the Firebase/GCS
// clients. They honor the same contracts the real adapters do: conflict on an
// existing chat ID, union semantics on chatRefs, atomic lastMessage update.

type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if user.ChatRefs == nil {
		user.ChatRefs = []string{}
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) ([]*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var result []*entity.User
	for _, user := range r.users {
		if user.Username == username {
			result = append(result, user)
		}
	}
	return result, nil
}

type fakeChatRepo struct {
	userRepo *fakeUserRepo
	chats    map[string]*entity.Chat
	messages map[string][]*entity.Message
	clock    time.Time
}

func newFakeChatRepo(userRepo *fakeUserRepo) *fakeChatRepo {
	return &fakeChatRepo{
		userRepo: userRepo,
		chats:    make(map[string]*entity.Chat),
		messages: make(map[string][]*entity.Message),
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeChatRepo) CreateDirect(ctx context.Context, chat *entity.Chat) error {
	if _, ok := r.chats[chat.ID]; ok {
		return errors.Conflict("Chat already exists")
	}

	chat.CreatedAt = time.Now()
	r.chats[chat.ID] = chat

	for memberID := range chat.Members {
		user, ok := r.userRepo.users[memberID]
		if !ok {
			return errors.Internal("Failed to link chat to user", nil)
		}
		unionChatRef(user, chat.ID)
	}

	return nil
}

// unionChatRef mirrors firestore.ArrayUnion: adding an existing element is a
// no-op.
func unionChatRef(user *entity.User, chatID string) {
	for _, ref := range user.ChatRefs {
		if ref == chatID {
			return
		}
	}
	user.ChatRefs = append(user.ChatRefs, chatID)
}

func (r *fakeChatRepo) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	chat, ok := r.chats[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	return chat, nil
}

func (r *fakeChatRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Chat, error) {
	user, ok := r.userRepo.users[userID]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}

	var chats []*entity.Chat
	for _, chatID := range user.ChatRefs {
		if chat, ok := r.chats[chatID]; ok {
			chats = append(chats, chat)
		}
	}
	return chats, nil
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, chatID string, message *entity.Message) error {
	chat, ok := r.chats[chatID]
	if !ok {
		return errors.NotFound("Chat", nil)
	}

	if message.ID == "" {
		message.ID = fmt.Sprintf("msg-%d", len(r.messages[chatID])+1)
	}
	r.clock = r.clock.Add(time.Second)
	message.CreatedAt = r.clock

	r.messages[chatID] = append(r.messages[chatID], message)
	chat.LastMessage = message
	return nil
}

func (r *fakeChatRepo) GetMessageByID(ctx context.Context, chatID, messageID string) (*entity.Message, error) {
	for _, message := range r.messages[chatID] {
		if message.ID == messageID {
			return message, nil
		}
	}
	return nil, errors.NotFound("Message", nil)
}

func (r *fakeChatRepo) ListMessages(ctx context.Context, chatID string, limit int, before *entity.Message) ([]*entity.Message, error) {
	all := append([]*entity.Message(nil), r.messages[chatID]...)
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	var page []*entity.Message
	for _, message := range all {
		if before != nil && !message.CreatedAt.Before(before.CreatedAt) {
			continue
		}
		page = append(page, message)
		if len(page) == limit {
			break
		}
	}
	return page, nil
}

type fakeAuthClient struct {
	nextUID   string
	accounts  map[string]string // uid -> displayName
	photoURLs map[string]string
	deleted   []string

	createErr error
	signInErr error
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		nextUID:   "uid-1",
		accounts:  make(map[string]string),
		photoURLs: make(map[string]string),
	}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.accounts[f.nextUID] = displayName
	return f.nextUID, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return "token-" + f.nextUID, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return f.nextUID, nil
}

func (f *fakeAuthClient) UpdateProfile(ctx context.Context, uid, displayName, photoURL string) error {
	f.accounts[uid] = displayName
	f.photoURLs[uid] = photoURL
	return nil
}

func (f *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	delete(f.accounts, uid)
	f.deleted = append(f.deleted, uid)
	return nil
}

type fakeStorageClient struct {
	uploads   map[string]string // email -> url
	deleted   []string
	uploadErr error
}

func newFakeStorageClient() *fakeStorageClient {
	return &fakeStorageClient{uploads: make(map[string]string)}
}

func (f *fakeStorageClient) UploadProfileImage(ctx context.Context, email string, file io.Reader, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	url := "https://storage.googleapis.com/test-bucket/profiles/" + email
	f.uploads[email] = url
	return url, nil
}

func (f *fakeStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	for email, url := range f.uploads {
		if url == fileURL {
			delete(f.uploads, email)
		}
	}
	return nil
}
