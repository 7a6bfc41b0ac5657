package usecase

import (
	"context"

	"campusmarket/internal/domain/entity"
	"campusmarket/internal/domain/repository"
)

// ListingUseCase is the uniform boundary over the listing repository: every
// method returns (payload, error) where the error is always a typed
// *errors.AppError, so the HTTP layer never branches on error internals.
type ListingUseCase struct {
	listingRepo repository.ListingRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
	}
}

type SearchResult struct {
	Items  []entity.Listing `json:"items"`
	Total  int64            `json:"total"`
	Offset int              `json:"offset"`
	Limit  int              `json:"limit"`
}

func (uc *ListingUseCase) GetAll(ctx context.Context, token string) ([]entity.Listing, error) {
	return uc.listingRepo.GetAll(ctx, token)
}

func (uc *ListingUseCase) GetByID(ctx context.Context, token, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, token, id)
}

func (uc *ListingUseCase) Search(ctx context.Context, token string, params entity.SearchListingsParams) (*SearchResult, error) {
	items, total, err := uc.listingRepo.Search(ctx, token, params)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.Listing{}
	}
	return &SearchResult{
		Items:  items,
		Total:  total,
		Offset: params.Offset,
		Limit:  params.Limit,
	}, nil
}

func (uc *ListingUseCase) GetByCategory(ctx context.Context, token, categoryID string) ([]entity.Listing, error) {
	return uc.listingRepo.GetByCategory(ctx, token, categoryID)
}

func (uc *ListingUseCase) GetByCondition(ctx context.Context, token string, condition entity.ListingCondition) ([]entity.Listing, error) {
	return uc.listingRepo.GetByCondition(ctx, token, condition)
}

func (uc *ListingUseCase) GetByStatus(ctx context.Context, token string, status entity.ListingStatus) ([]entity.Listing, error) {
	return uc.listingRepo.GetByStatus(ctx, token, status)
}

func (uc *ListingUseCase) Create(ctx context.Context, token string, input entity.CreateListingInput) (*entity.Listing, error) {
	return uc.listingRepo.Create(ctx, token, input)
}

func (uc *ListingUseCase) Update(ctx context.Context, token, id string, patch entity.ListingPatch) (*entity.Listing, error) {
	return uc.listingRepo.Update(ctx, token, id, patch)
}

func (uc *ListingUseCase) Delete(ctx context.Context, token, id string) (string, error) {
	return uc.listingRepo.Delete(ctx, token, id)
}

func (uc *ListingUseCase) GetMostRecent(ctx context.Context) ([]entity.Listing, error) {
	return uc.listingRepo.GetMostRecent(ctx)
}

// GetBySeller is admin-only; the route gate enforces the role before this
// runs.
func (uc *ListingUseCase) GetBySeller(ctx context.Context, sellerID string) ([]entity.Listing, error) {
	return uc.listingRepo.GetBySeller(ctx, sellerID)
}
