package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmarket/internal/adapter/api"
	"campusmarket/internal/domain/entity"
	"campusmarket/internal/usecase"
	apperrors "campusmarket/pkg/errors"
)

// stubListingRepo records the last call so handler tests can assert what the
// controller forwarded.
type stubListingRepo struct {
	lastToken  string
	lastParams entity.SearchListingsParams
	listings   []entity.Listing
	err        error
}

func (s *stubListingRepo) GetAll(ctx context.Context, token string) ([]entity.Listing, error) {
	s.lastToken = token
	return s.listings, s.err
}

func (s *stubListingRepo) GetByID(ctx context.Context, token, id string) (*entity.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.listings) == 0 {
		return nil, apperrors.NotFound("Listing", nil)
	}
	return &s.listings[0], nil
}

func (s *stubListingRepo) Search(ctx context.Context, token string, params entity.SearchListingsParams) ([]entity.Listing, int64, error) {
	s.lastToken = token
	s.lastParams = params
	return s.listings, int64(len(s.listings)), s.err
}

func (s *stubListingRepo) GetByCategory(ctx context.Context, token, categoryID string) ([]entity.Listing, error) {
	return s.listings, s.err
}

func (s *stubListingRepo) GetByCondition(ctx context.Context, token string, condition entity.ListingCondition) ([]entity.Listing, error) {
	return s.listings, s.err
}

func (s *stubListingRepo) GetByStatus(ctx context.Context, token string, status entity.ListingStatus) ([]entity.Listing, error) {
	return s.listings, s.err
}

func (s *stubListingRepo) Create(ctx context.Context, token string, input entity.CreateListingInput) (*entity.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.Listing{
		ID:          uuid.NewString(),
		Title:       input.Title,
		CategoryID:  input.CategoryID,
		ConditionID: input.ConditionID,
		Price:       input.Price,
		Status:      entity.ListingStatusActive,
	}, nil
}

func (s *stubListingRepo) Update(ctx context.Context, token, id string, patch entity.ListingPatch) (*entity.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.listings) == 0 {
		return nil, apperrors.NotFound("Listing", nil)
	}
	return &s.listings[0], nil
}

func (s *stubListingRepo) Delete(ctx context.Context, token, id string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return id, nil
}

func (s *stubListingRepo) GetMostRecent(ctx context.Context) ([]entity.Listing, error) {
	return s.listings, s.err
}

func (s *stubListingRepo) GetBySeller(ctx context.Context, sellerID string) ([]entity.Listing, error) {
	return s.listings, s.err
}

func newListingContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListDispatchesToSearch(t *testing.T) {
	repo := &stubListingRepo{listings: []entity.Listing{{ID: "l1", Title: "Phone case"}}}
	h := NewListingHandler(usecase.NewListingUseCase(repo))

	c, rec := newListingContext(t, http.MethodGet, "/listings?query=phone&offset=5&limit=10", "")
	c.Set("accessToken", "token123")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token123", repo.lastToken)
	assert.Equal(t, "phone", repo.lastParams.Query)
	assert.Equal(t, 5, repo.lastParams.Offset)
	assert.Equal(t, 10, repo.lastParams.Limit)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestListDefaultsLimit(t *testing.T) {
	repo := &stubListingRepo{}
	h := NewListingHandler(usecase.NewListingUseCase(repo))

	c, rec := newListingContext(t, http.MethodGet, "/listings?query=phone", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, repo.lastParams.Offset)
	assert.Equal(t, 20, repo.lastParams.Limit)
}

func TestListRejectsMalformedPriceFilters(t *testing.T) {
	for _, target := range []string{
		"/listings?query=phone&minPrice=abc",
		"/listings?query=phone&maxPrice=12x",
		"/listings?query=phone&offset=five",
		"/listings?query=phone&isFree=maybe",
	} {
		t.Run(target, func(t *testing.T) {
			repo := &stubListingRepo{}
			h := NewListingHandler(usecase.NewListingUseCase(repo))

			c, rec := newListingContext(t, http.MethodGet, target, "")
			require.NoError(t, h.List(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, repo.lastParams.Query, "the repository must not be reached")
		})
	}
}

func TestListNormalizesLegacyCondition(t *testing.T) {
	repo := &stubListingRepo{}
	h := NewListingHandler(usecase.NewListingUseCase(repo))

	c, rec := newListingContext(t, http.MethodGet, "/listings?condition=BEST", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newListingContext(t, http.MethodGet, "/listings?condition=SHINY", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetByIDNotFoundMapsTo404(t *testing.T) {
	repo := &stubListingRepo{}
	h := NewListingHandler(usecase.NewListingUseCase(repo))

	c, rec := newListingContext(t, http.MethodGet, "/listings/l1", "")
	c.SetParamNames("id")
	c.SetParamValues("l1")
	require.NoError(t, h.GetByID(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Listing not found"}`, rec.Body.String())
}

func TestCreateReturns201(t *testing.T) {
	repo := &stubListingRepo{}
	h := NewListingHandler(usecase.NewListingUseCase(repo))

	c, rec := newListingContext(t, http.MethodPost, "/listings",
		`{"title":"Desk lamp","category_id":"c1","condition_id":"cond1","price":12.5}`)
	c.Set("accessToken", "token123")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Desk lamp")
}

func TestCreateValidatesBody(t *testing.T) {
	repo := &stubListingRepo{}
	h := NewListingHandler(usecase.NewListingUseCase(repo))

	c, rec := newListingContext(t, http.MethodPost, "/listings", `{"price":-3}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteReturnsRemovedID(t *testing.T) {
	repo := &stubListingRepo{}
	h := NewListingHandler(usecase.NewListingUseCase(repo))

	c, rec := newListingContext(t, http.MethodDelete, "/listings/l1", "")
	c.Set("accessToken", "token123")
	c.SetParamNames("id")
	c.SetParamValues("l1")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"l1"}`, rec.Body.String())
}

func TestStoreErrorMapsTo502(t *testing.T) {
	repo := &stubListingRepo{err: apperrors.StoreError(assert.AnError)}
	h := NewListingHandler(usecase.NewListingUseCase(repo))

	c, rec := newListingContext(t, http.MethodGet, "/listings", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
