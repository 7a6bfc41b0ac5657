package repository

import (
	"context"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"campusmarket/internal/domain/entity"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/infrastructure/supabase"
	"campusmarket/pkg/errors"
)

const usersTable = "users"

const publicUserColumns = "full_name, email, avatar_url, zip_code, campus_region, rating_avg, rating_count, phone_number"

// identityResolver resolves an access token to the identity it belongs to.
// Satisfied by *supabase.AuthClient.
type identityResolver interface {
	GetUser(ctx context.Context, accessToken string) (*entity.Identity, error)
}

type supabaseUserRepository struct {
	factory  *supabase.ClientFactory
	identity identityResolver
}

func NewSupabaseUserRepository(factory *supabase.ClientFactory, identity identityResolver) repository.UserRepository {
	return &supabaseUserRepository{
		factory:  factory,
		identity: identity,
	}
}

// requireSelfID asks the identity provider who the token belongs to. The
// store's RLS would already stop cross-user writes, but resolving the id up
// front gives precise Unauthenticated errors instead of empty result sets.
func (r *supabaseUserRepository) requireSelfID(ctx context.Context, token string) (string, error) {
	identity, err := r.identity.GetUser(ctx, token)
	if err != nil {
		return "", errors.Unauthorized("Not authenticated", err)
	}
	return identity.ID, nil
}

func (r *supabaseUserRepository) scoped(token string) (*postgrest.Client, error) {
	return r.factory.ForUser(token)
}

func (r *supabaseUserRepository) GetSelf(ctx context.Context, token string) (*entity.User, error) {
	client, err := r.scoped(token)
	if err != nil {
		return nil, err
	}
	selfID, err := r.requireSelfID(ctx, token)
	if err != nil {
		return nil, err
	}

	var users []entity.User
	_, err = client.From(usersTable).
		Select("*", "", false).
		Eq("id", selfID).
		ExecuteToWithContext(ctx, &users)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	if len(users) == 0 {
		return nil, errors.NotFound("User", nil)
	}
	return &users[0], nil
}

func (r *supabaseUserRepository) UpdateSelf(ctx context.Context, token string, patch entity.UserPatch) (*entity.User, error) {
	if patch.IsEmpty() {
		return nil, errors.BadRequest("no valid fields to update", nil)
	}

	client, err := r.scoped(token)
	if err != nil {
		return nil, err
	}
	selfID, err := r.requireSelfID(ctx, token)
	if err != nil {
		return nil, err
	}

	var users []entity.User
	_, err = client.From(usersTable).
		Update(patch, "representation", "").
		Eq("id", selfID).
		ExecuteToWithContext(ctx, &users)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	if len(users) == 0 {
		return nil, errors.NotFound("User", nil)
	}
	return &users[0], nil
}

func (r *supabaseUserRepository) SearchByName(ctx context.Context, token, name string, limit int) ([]entity.PublicUser, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return []entity.PublicUser{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	client, err := r.scoped(token)
	if err != nil {
		return nil, err
	}

	var users []entity.PublicUser
	_, err = client.From(usersTable).
		Select(publicUserColumns, "", false).
		Neq("status", string(entity.UserStatusDeleted)).
		Ilike("full_name", "%"+query+"%").
		Order("full_name", &postgrest.OrderOpts{Ascending: true}).
		Limit(limit, "").
		ExecuteToWithContext(ctx, &users)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	return users, nil
}

func (r *supabaseUserRepository) SearchByEmail(ctx context.Context, token, email string, limit int) ([]entity.PublicUser, error) {
	query := strings.TrimSpace(email)
	if query == "" {
		return []entity.PublicUser{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	client, err := r.scoped(token)
	if err != nil {
		return nil, err
	}

	var users []entity.PublicUser
	_, err = client.From(usersTable).
		Select(publicUserColumns, "", false).
		Neq("status", string(entity.UserStatusDeleted)).
		Ilike("email", query).
		Order("email", &postgrest.OrderOpts{Ascending: true}).
		Limit(limit, "").
		ExecuteToWithContext(ctx, &users)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	return users, nil
}

func (r *supabaseUserRepository) DeleteSelf(ctx context.Context, token string) error {
	client, err := r.scoped(token)
	if err != nil {
		return err
	}
	selfID, err := r.requireSelfID(ctx, token)
	if err != nil {
		return err
	}

	patch := map[string]string{"status": string(entity.UserStatusDeleted)}
	var users []entity.User
	_, err = client.From(usersTable).
		Update(patch, "representation", "").
		Eq("id", selfID).
		ExecuteToWithContext(ctx, &users)
	if err != nil {
		return errors.StoreError(err)
	}
	if len(users) == 0 {
		return errors.NotFound("User", nil)
	}
	return nil
}

func (r *supabaseUserRepository) SoftDelete(ctx context.Context, userID string) error {
	patch := map[string]string{"status": string(entity.UserStatusDeleted)}
	var users []entity.User
	_, err := r.factory.Admin().
		From(usersTable).
		Update(patch, "representation", "").
		Eq("id", userID).
		ExecuteToWithContext(ctx, &users)
	if err != nil {
		return errors.StoreError(err)
	}
	if len(users) == 0 {
		return errors.NotFound("User", nil)
	}
	return nil
}
