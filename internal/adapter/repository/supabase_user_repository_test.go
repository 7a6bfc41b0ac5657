package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmarket/internal/domain/entity"
	apperrors "campusmarket/pkg/errors"
)

const baseUserJSON = `{
	"id": "u1",
	"email": "jo@tcu.edu",
	"full_name": "Jo Frog",
	"role": "USER",
	"verified": true,
	"balance": 0,
	"strike_count": 0,
	"status": "ACTIVE",
	"campus_region": "main",
	"zip_code": "76129",
	"rating_avg": 4.5,
	"rating_count": 12,
	"avatar_url": null,
	"phone_number": null,
	"created_at": "2026-01-10T00:00:00Z"
}`

type stubResolver struct {
	identity *entity.Identity
	err      error
}

func (s *stubResolver) GetUser(ctx context.Context, accessToken string) (*entity.Identity, error) {
	return s.identity, s.err
}

func TestGetSelf(t *testing.T) {
	store := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/users", r.URL.Path)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("id"))
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		respondJSON(w, http.StatusOK, "["+baseUserJSON+"]")
	})
	repo := NewSupabaseUserRepository(testFactory(t, store.server.URL), &stubResolver{
		identity: &entity.Identity{ID: "u1", Email: "jo@tcu.edu"},
	})

	user, err := repo.GetSelf(context.Background(), "token123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, entity.UserStatusActive, user.Status)
}

func TestGetSelfUnresolvedToken(t *testing.T) {
	store := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no query expected when the token does not resolve")
	})
	repo := NewSupabaseUserRepository(testFactory(t, store.server.URL), &stubResolver{
		err: assert.AnError,
	})

	_, err := repo.GetSelf(context.Background(), "badtoken")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestGetSelfMissingToken(t *testing.T) {
	store := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no query expected without a token")
	})
	repo := NewSupabaseUserRepository(testFactory(t, store.server.URL), &stubResolver{})

	_, err := repo.GetSelf(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))
}

func TestSearchByNameExcludesDeleted(t *testing.T) {
	store := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "neq.DELETED", q.Get("status"))
		assert.Equal(t, "ilike.%jo%", q.Get("full_name"))
		assert.Equal(t, "10", q.Get("limit"))
		respondJSON(w, http.StatusOK, `[{"full_name":"Jo Frog","email":"jo@tcu.edu"}]`)
	})
	repo := NewSupabaseUserRepository(testFactory(t, store.server.URL), &stubResolver{})

	users, err := repo.SearchByName(context.Background(), "token123", "jo", 10)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Jo Frog", users[0].FullName)
}

func TestSearchByNameBlankQueryShortCircuits(t *testing.T) {
	store := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("a blank query must not reach the store")
	})
	repo := NewSupabaseUserRepository(testFactory(t, store.server.URL), &stubResolver{})

	users, err := repo.SearchByName(context.Background(), "token123", "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDeleteSelfSoftDeletes(t *testing.T) {
	store := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("id"))

		var patch map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, "DELETED", patch["status"])

		respondJSON(w, http.StatusOK, "["+baseUserJSON+"]")
	})
	repo := NewSupabaseUserRepository(testFactory(t, store.server.URL), &stubResolver{
		identity: &entity.Identity{ID: "u1"},
	})

	err := repo.DeleteSelf(context.Background(), "token123")
	require.NoError(t, err)
}

func TestAdminSoftDeleteUsesServiceRole(t *testing.T) {
	store := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "eq.u2", r.URL.Query().Get("id"))
		respondJSON(w, http.StatusOK, "["+baseUserJSON+"]")
	})
	repo := NewSupabaseUserRepository(testFactory(t, store.server.URL), &stubResolver{})

	err := repo.SoftDelete(context.Background(), "u2")
	require.NoError(t, err)
}

func TestUpdateSelfEmptyPatch(t *testing.T) {
	store := newFakeStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no query expected for an empty patch")
	})
	repo := NewSupabaseUserRepository(testFactory(t, store.server.URL), &stubResolver{
		identity: &entity.Identity{ID: "u1"},
	})

	_, err := repo.UpdateSelf(context.Background(), "token123", entity.UserPatch{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}
