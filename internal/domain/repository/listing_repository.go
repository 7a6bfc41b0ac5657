package repository

import (
	"context"

	"campusmarket/internal/domain/entity"
)

// ListingRepository translates typed requests into row-level-security scoped
// queries. Every operation takes the caller's access token except the
// anonymous GetMostRecent and the admin-only GetBySeller; an empty token
// means the anonymous scope.
type ListingRepository interface {
	GetAll(ctx context.Context, token string) ([]entity.Listing, error)
	GetByID(ctx context.Context, token, id string) (*entity.Listing, error)
	Search(ctx context.Context, token string, params entity.SearchListingsParams) ([]entity.Listing, int64, error)
	GetByCategory(ctx context.Context, token, categoryID string) ([]entity.Listing, error)
	GetByCondition(ctx context.Context, token string, condition entity.ListingCondition) ([]entity.Listing, error)
	GetByStatus(ctx context.Context, token string, status entity.ListingStatus) ([]entity.Listing, error)
	Create(ctx context.Context, token string, input entity.CreateListingInput) (*entity.Listing, error)
	Update(ctx context.Context, token, id string, patch entity.ListingPatch) (*entity.Listing, error)
	Delete(ctx context.Context, token, id string) (string, error)

	// GetMostRecent always runs under the anonymous scope.
	GetMostRecent(ctx context.Context) ([]entity.Listing, error)
	// GetBySeller runs under the administrative scope, bypassing row-level
	// security. It must only be reachable from admin-gated routes.
	GetBySeller(ctx context.Context, sellerID string) ([]entity.Listing, error)
}
