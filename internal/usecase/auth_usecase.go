package usecase

import (
	"context"

	"campusmarket/internal/domain/entity"
	"campusmarket/pkg/errors"
	"campusmarket/pkg/logger"
)

type AuthUseCase struct {
	identity IdentityClient
}

func NewAuthUseCase(identity IdentityClient) *AuthUseCase {
	return &AuthUseCase{
		identity: identity,
	}
}

type SignUpResult struct {
	User    *entity.Identity `json:"user"`
	Session *entity.Session  `json:"session"`
	Message string           `json:"message"`
}

type SignInResult struct {
	User         *entity.Identity `json:"user"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}

func (uc *AuthUseCase) SignUp(ctx context.Context, email, password, fullName string) (*SignUpResult, error) {
	user, session, err := uc.identity.SignUp(ctx, email, password, fullName)
	if err != nil {
		// Provider messages ("User already registered", ...) surface as-is.
		return nil, errors.BadRequest(err.Error(), err)
	}

	message := "Signed up"
	if session == nil {
		message = "Check your inbox to confirm your email"
	}

	return &SignUpResult{
		User:    user,
		Session: session,
		Message: message,
	}, nil
}

func (uc *AuthUseCase) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	user, session, err := uc.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		logger.Warn("sign-in rejected for %s: %v", email, err)
		return nil, errors.Unauthorized(err.Error(), err)
	}

	return &SignInResult{
		User:         user,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
	}, nil
}

func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*entity.Session, error) {
	session, err := uc.identity.RefreshSession(ctx, refreshToken)
	if err != nil {
		return nil, errors.Unauthorized(err.Error(), err)
	}
	return session, nil
}
