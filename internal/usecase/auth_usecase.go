package usecase

import (
	"context"
	"io"

	"chatapp/internal/domain/entity"
	"chatapp/internal/domain/repository"
	"chatapp/pkg/errors"
	"chatapp/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	storage      StorageClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient, storage StorageClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		storage:      storage,
	}
}

type RegisterInput struct {
	Username         string
	Email            string
	Password         string
	ProfileImage     io.Reader
	ImageContentType string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Register creates the identity provider account, uploads the profile image,
// writes the user document and mirrors the profile onto the provider account.
// The steps are sequential; failures after account creation are compensated by
// deleting whatever was already written, so a failed registration never leaves
// an orphaned account or a half-written user document.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Unauthorized("Failed to create account", err)
	}

	photoURL, err := uc.storage.UploadProfileImage(ctx, input.Email, input.ProfileImage, input.ImageContentType)
	if err != nil {
		uc.compensateAccount(ctx, uid)
		return nil, errors.Storage("Failed to upload profile image", err)
	}

	user := &entity.User{
		ID:       uid,
		Username: input.Username,
		Email:    input.Email,
		PhotoURL: photoURL,
		ChatRefs: []string{},
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.compensateImage(ctx, photoURL)
		uc.compensateAccount(ctx, uid)
		return nil, err
	}

	// Best-effort mirror: account and user document are already consistent, so
	// a failure here propagates without rolling either back.
	if err := uc.firebaseAuth.UpdateProfile(ctx, uid, input.Username, photoURL); err != nil {
		return nil, errors.Internal("Failed to update account profile", err)
	}

	return user, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *AuthUseCase) compensateAccount(ctx context.Context, uid string) {
	if err := uc.firebaseAuth.DeleteUser(ctx, uid); err != nil {
		logger.Error("Failed to delete orphaned account %s: %v", uid, err)
	}
}

func (uc *AuthUseCase) compensateImage(ctx context.Context, photoURL string) {
	if err := uc.storage.DeleteFile(ctx, photoURL); err != nil {
		logger.Error("Failed to delete orphaned profile image %s: %v", photoURL, err)
	}
}
