package repository

import (
	"context"

	"campusmarket/internal/domain/entity"
)

type UserRepository interface {
	GetSelf(ctx context.Context, token string) (*entity.User, error)
	UpdateSelf(ctx context.Context, token string, patch entity.UserPatch) (*entity.User, error)
	SearchByName(ctx context.Context, token, name string, limit int) ([]entity.PublicUser, error)
	SearchByEmail(ctx context.Context, token, email string, limit int) ([]entity.PublicUser, error)
	// DeleteSelf soft deletes the caller's own row (status DELETED).
	DeleteSelf(ctx context.Context, token string) error

	// SoftDelete runs under the administrative scope.
	SoftDelete(ctx context.Context, userID string) error
}
