package usecase

import (
	"context"

	"chatapp/internal/domain/entity"
	"chatapp/internal/domain/repository"
	"chatapp/pkg/errors"
	"chatapp/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// SearchUsers does an exact-match lookup on username and filters the caller
// out of the result, so searching your own username finds nobody.
func (uc *UserUseCase) SearchUsers(ctx context.Context, callerID, username string) ([]*entity.User, error) {
	users, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		logger.Error("User search failed for username %q: %v", username, err)
		return nil, errors.Lookup("Failed to search users")
	}

	results := make([]*entity.User, 0, len(users))
	for _, user := range users {
		if user.ID == callerID {
			continue
		}
		results = append(results, user)
	}

	return results, nil
}
