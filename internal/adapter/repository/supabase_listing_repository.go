package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"campusmarket/internal/domain/entity"
	"campusmarket/internal/domain/repository"
	"campusmarket/internal/infrastructure/supabase"
	"campusmarket/pkg/errors"
)

const listingsTable = "listings"

type supabaseListingRepository struct {
	factory *supabase.ClientFactory
}

func NewSupabaseListingRepository(factory *supabase.ClientFactory) repository.ListingRepository {
	return &supabaseListingRepository{
		factory: factory,
	}
}

// scoped picks the client for the caller: the user scope when a token is
// present, the anonymous scope otherwise. RLS does the actual gating.
func (r *supabaseListingRepository) scoped(token string) *postgrest.Client {
	if token == "" {
		return r.factory.Anon()
	}
	client, err := r.factory.ForUser(token)
	if err != nil {
		return r.factory.Anon()
	}
	return client
}

func (r *supabaseListingRepository) GetAll(ctx context.Context, token string) ([]entity.Listing, error) {
	var listings []entity.Listing
	_, err := r.scoped(token).
		From(listingsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	return listings, nil
}

func (r *supabaseListingRepository) GetByID(ctx context.Context, token, id string) (*entity.Listing, error) {
	var listings []entity.Listing
	_, err := r.scoped(token).
		From(listingsTable).
		Select("*", "", false).
		Eq("id", id).
		ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	if len(listings) == 0 {
		return nil, errors.NotFound("Listing", nil)
	}
	return &listings[0], nil
}

func (r *supabaseListingRepository) Search(ctx context.Context, token string, params entity.SearchListingsParams) ([]entity.Listing, int64, error) {
	q := strings.TrimSpace(params.Query)
	if q == "" {
		return nil, 0, errors.BadRequest("query field cannot be empty", nil)
	}
	if params.Offset < 0 {
		return nil, 0, errors.BadRequest("offset must be >= 0", nil)
	}
	if params.Limit <= 0 || params.Limit > 100 {
		return nil, 0, errors.BadRequest("limit must be 1..100", nil)
	}
	if params.MinPrice != nil && params.MaxPrice != nil && *params.MinPrice > *params.MaxPrice {
		return nil, 0, errors.BadRequest("minPrice cannot be greater than maxPrice", nil)
	}
	if params.Status != "" && !params.Status.Valid() {
		return nil, 0, errors.BadRequest("invalid status", nil)
	}

	from := params.Offset
	to := params.Offset + params.Limit - 1

	qb := r.scoped(token).
		From(listingsTable).
		Select("*", "exact", false).
		Or(fmt.Sprintf("title.ilike.%%%s%%,description.ilike.%%%s%%", q, q), "").
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(from, to, "")

	if params.CategoryID != "" {
		qb = qb.Eq("category_id", params.CategoryID)
	}
	if params.ConditionID != "" {
		qb = qb.Eq("condition_id", params.ConditionID)
	}
	if params.Status != "" {
		qb = qb.Eq("status", string(params.Status))
	}
	if params.IsFree != nil {
		qb = qb.Eq("is_free", strconv.FormatBool(*params.IsFree))
	}
	if params.MinPrice != nil {
		qb = qb.Gte("price", formatPrice(*params.MinPrice))
	}
	if params.MaxPrice != nil {
		qb = qb.Lte("price", formatPrice(*params.MaxPrice))
	}

	var listings []entity.Listing
	total, err := qb.ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, 0, errors.StoreError(err)
	}
	return listings, total, nil
}

func (r *supabaseListingRepository) GetByCategory(ctx context.Context, token, categoryID string) ([]entity.Listing, error) {
	var listings []entity.Listing
	_, err := r.scoped(token).
		From(listingsTable).
		Select("*", "", false).
		Eq("category_id", categoryID).
		ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	return listings, nil
}

func (r *supabaseListingRepository) GetByCondition(ctx context.Context, token string, condition entity.ListingCondition) ([]entity.Listing, error) {
	var listings []entity.Listing
	_, err := r.scoped(token).
		From(listingsTable).
		Select("*, conditions!inner(id, name)", "", false).
		Eq("conditions.name", string(condition)).
		ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	return listings, nil
}

func (r *supabaseListingRepository) GetByStatus(ctx context.Context, token string, status entity.ListingStatus) ([]entity.Listing, error) {
	if !status.Valid() {
		return nil, errors.BadRequest("invalid status", nil)
	}

	var listings []entity.Listing
	_, err := r.scoped(token).
		From(listingsTable).
		Select("*", "", false).
		Eq("status", string(status)).
		ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	return listings, nil
}

func (r *supabaseListingRepository) Create(ctx context.Context, token string, input entity.CreateListingInput) (*entity.Listing, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.BadRequest("title cannot be empty", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("price must be >= 0", nil)
	}
	if input.Status == "" {
		input.Status = entity.ListingStatusActive
	}
	if !input.Status.Valid() {
		return nil, errors.BadRequest("invalid status", nil)
	}

	var listings []entity.Listing
	_, err := r.scoped(token).
		From(listingsTable).
		Insert(input, false, "", "representation", "").
		ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	if len(listings) == 0 {
		return nil, errors.StoreError(fmt.Errorf("insert returned no row"))
	}
	return &listings[0], nil
}

func (r *supabaseListingRepository) Update(ctx context.Context, token, id string, patch entity.ListingPatch) (*entity.Listing, error) {
	if patch.IsEmpty() {
		return nil, errors.BadRequest("no valid fields to update", nil)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, errors.BadRequest("invalid status", nil)
	}

	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, errors.BadRequest("price must be >= 0", nil)
		}

		current, err := r.currentPrice(ctx, token, id)
		if err != nil {
			return nil, err
		}
		if *patch.Price > current {
			return nil, errors.BadRequest("price may only decrease", nil)
		}
	}

	var listings []entity.Listing
	_, err := r.scoped(token).
		From(listingsTable).
		Update(patch, "representation", "").
		Eq("id", id).
		ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	if len(listings) == 0 {
		return nil, errors.NotFound("Listing", nil)
	}
	return &listings[0], nil
}

func (r *supabaseListingRepository) currentPrice(ctx context.Context, token, id string) (float64, error) {
	var rows []struct {
		Price float64 `json:"price"`
	}
	_, err := r.scoped(token).
		From(listingsTable).
		Select("price", "", false).
		Eq("id", id).
		ExecuteToWithContext(ctx, &rows)
	if err != nil {
		return 0, errors.StoreError(err)
	}
	if len(rows) == 0 {
		return 0, errors.NotFound("Listing", nil)
	}
	return rows[0].Price, nil
}

func (r *supabaseListingRepository) Delete(ctx context.Context, token, id string) (string, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	_, err := r.scoped(token).
		From(listingsTable).
		Delete("representation", "").
		Eq("id", id).
		ExecuteToWithContext(ctx, &rows)
	if err != nil {
		return "", errors.StoreError(err)
	}
	if len(rows) == 0 {
		return "", errors.NotFound("Listing", nil)
	}
	return rows[0].ID, nil
}

func (r *supabaseListingRepository) GetMostRecent(ctx context.Context) ([]entity.Listing, error) {
	var listings []entity.Listing
	_, err := r.factory.Anon().
		From(listingsTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(20, "").
		ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	return listings, nil
}

func (r *supabaseListingRepository) GetBySeller(ctx context.Context, sellerID string) ([]entity.Listing, error) {
	var listings []entity.Listing
	_, err := r.factory.Admin().
		From(listingsTable).
		Select("*", "", false).
		Eq("seller_id", sellerID).
		ExecuteToWithContext(ctx, &listings)
	if err != nil {
		return nil, errors.StoreError(err)
	}
	return listings, nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
