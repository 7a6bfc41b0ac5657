package usecase

import (
	"context"

	"campusmarket/internal/domain/entity"
	"campusmarket/internal/domain/repository"
	"campusmarket/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) GetSelf(ctx context.Context, token string) (*entity.User, error) {
	return uc.userRepo.GetSelf(ctx, token)
}

func (uc *UserUseCase) UpdateSelf(ctx context.Context, token string, patch entity.UserPatch) (*entity.User, error) {
	return uc.userRepo.UpdateSelf(ctx, token, patch)
}

func (uc *UserUseCase) SearchByName(ctx context.Context, token, name string, limit int) ([]entity.PublicUser, error) {
	return uc.userRepo.SearchByName(ctx, token, name, limit)
}

func (uc *UserUseCase) SearchByEmail(ctx context.Context, token, email string, limit int) ([]entity.PublicUser, error) {
	return uc.userRepo.SearchByEmail(ctx, token, email, limit)
}

func (uc *UserUseCase) DeleteSelf(ctx context.Context, token string) error {
	return uc.userRepo.DeleteSelf(ctx, token)
}

func (uc *UserUseCase) SoftDeleteUser(ctx context.Context, userID string) error {
	logger.Info("admin soft-deleting user %s", userID)
	return uc.userRepo.SoftDelete(ctx, userID)
}
