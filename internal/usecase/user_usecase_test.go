package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"chatapp/internal/domain/entity"
	apperrors "chatapp/pkg/errors"
)

func TestSearchUsersExcludesCaller(t *testing.T) {
	userRepo := newFakeUserRepo()
	// Two distinct users sharing the same username: the caller must never see
	// themselves, even on an exact self-match.
	userRepo.users["caller-uid"] = &entity.User{ID: "caller-uid", Username: "alice"}
	userRepo.users["other-uid"] = &entity.User{ID: "other-uid", Username: "alice"}

	uc := NewUserUseCase(userRepo)

	users, err := uc.SearchUsers(context.Background(), "caller-uid", "alice")
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "other-uid", users[0].ID)
}

func TestSearchUsersNoMatch(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.users["caller-uid"] = &entity.User{ID: "caller-uid", Username: "alice"}

	uc := NewUserUseCase(userRepo)

	users, err := uc.SearchUsers(context.Background(), "caller-uid", "bob")
	assert.NoError(t, err)
	assert.Empty(t, users)
}

func TestSearchUsersFailureIsGeneric(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.findErr = fmt.Errorf("index missing: username")

	uc := NewUserUseCase(userRepo)

	_, err := uc.SearchUsers(context.Background(), "caller-uid", "alice")
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, "LOOKUP_FAILED"))

	// The underlying reason is logged and discarded, never wrapped.
	appErr := err.(*apperrors.AppError)
	assert.Nil(t, appErr.Err)
}
