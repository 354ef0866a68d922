package usecase

import (
	"context"
	"io"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	UpdateProfile(ctx context.Context, uid, displayName, photoURL string) error
	DeleteUser(ctx context.Context, uid string) error
}

type StorageClient interface {
	UploadProfileImage(ctx context.Context, email string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}
