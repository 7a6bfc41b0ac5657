package usecase

import (
	"context"

	"campusmarket/internal/domain/entity"
)

type IdentityClient interface {
	SignUp(ctx context.Context, email, password, fullName string) (*entity.Identity, *entity.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Identity, *entity.Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error)
	GetUser(ctx context.Context, accessToken string) (*entity.Identity, error)
}
