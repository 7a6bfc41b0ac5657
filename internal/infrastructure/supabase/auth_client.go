package supabase

import (
	"context"
	"strings"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"campusmarket/internal/domain/entity"
	"campusmarket/pkg/config"
)

// AuthClient wraps the GoTrue identity provider. All credentials it handles
// are opaque bearer tokens; nothing is verified locally.
type AuthClient struct {
	client gotrue.Client
}

func NewAuthClient(cfg *config.Config) *AuthClient {
	authURL := strings.TrimRight(cfg.SupabaseURL, "/") + "/auth/v1"
	client := gotrue.New("campusmarket", cfg.SupabaseAnonKey).WithCustomGoTrueURL(authURL)
	return &AuthClient{client: client}
}

// SignUp registers a new account. When the provider withholds the session
// pending email confirmation, the returned session is nil.
func (a *AuthClient) SignUp(ctx context.Context, email, password, fullName string) (*entity.Identity, *entity.Session, error) {
	req := types.SignupRequest{
		Email:    email,
		Password: password,
	}
	if fullName != "" {
		req.Data = map[string]interface{}{"full_name": fullName}
	}

	resp, err := a.client.Signup(req)
	if err != nil {
		return nil, nil, err
	}

	identity := &entity.Identity{
		ID:    resp.ID.String(),
		Email: resp.Email,
	}

	if resp.AccessToken == "" {
		return identity, nil, nil
	}
	return identity, &entity.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

func (a *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (*entity.Identity, *entity.Session, error) {
	resp, err := a.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, nil, err
	}

	identity := &entity.Identity{
		ID:    resp.User.ID.String(),
		Email: resp.User.Email,
	}
	return identity, &entity.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

func (a *AuthClient) RefreshSession(ctx context.Context, refreshToken string) (*entity.Session, error) {
	resp, err := a.client.RefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	return &entity.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

// GetUser resolves an access token to the identity it was issued for.
func (a *AuthClient) GetUser(ctx context.Context, accessToken string) (*entity.Identity, error) {
	resp, err := a.client.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, err
	}
	return &entity.Identity{
		ID:    resp.ID.String(),
		Email: resp.Email,
	}, nil
}
