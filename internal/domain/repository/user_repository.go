package repository

import (
	"context"

	"chatapp/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	FindByUsername(ctx context.Context, username string) ([]*entity.User, error)
}
