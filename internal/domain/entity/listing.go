package entity

import "time"

type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "ACTIVE"
	ListingStatusInactive ListingStatus = "INACTIVE"
	ListingStatusReserved ListingStatus = "RESERVED"
	ListingStatusSold     ListingStatus = "SOLD"
)

func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusActive, ListingStatusInactive, ListingStatusReserved, ListingStatusSold:
		return true
	}
	return false
}

type ListingCondition string

const (
	ConditionNew     ListingCondition = "NEW"
	ConditionLikeNew ListingCondition = "LIKE_NEW"
	ConditionGood    ListingCondition = "GOOD"
	ConditionFair    ListingCondition = "FAIR"
	ConditionPoor    ListingCondition = "POOR"
)

// NormalizeCondition maps the legacy condition names (BEST/NORMAL/BAD) onto
// the canonical enumeration. Unknown values come back unchanged with ok=false.
func NormalizeCondition(raw string) (ListingCondition, bool) {
	switch ListingCondition(raw) {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionPoor:
		return ListingCondition(raw), true
	}
	switch raw {
	case "BEST":
		return ConditionLikeNew, true
	case "NORMAL":
		return ConditionFair, true
	case "BAD":
		return ConditionPoor, true
	}
	return ListingCondition(raw), false
}

// Listing is a marketplace item for sale. SellerID and CreatedAt are
// assigned by the store and never change after creation.
type Listing struct {
	ID          string        `json:"id"`
	SellerID    string        `json:"seller_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CategoryID  string        `json:"category_id"`
	ConditionID string        `json:"condition_id"`
	Price       float64       `json:"price"`
	IsFree      bool          `json:"is_free"`
	Status      ListingStatus `json:"status"`
	Location    string        `json:"location"`
	CreatedAt   time.Time     `json:"created_at"`
}

type CreateListingInput struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	CategoryID  string        `json:"category_id"`
	ConditionID string        `json:"condition_id"`
	Price       float64       `json:"price"`
	IsFree      bool          `json:"is_free"`
	Status      ListingStatus `json:"status,omitempty"`
	Location    string        `json:"location,omitempty"`
}

// ListingPatch carries a partial update; only fields explicitly present are
// applied. Pointer fields with omitempty make the patch serialize to exactly
// the columns being changed.
type ListingPatch struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	CategoryID  *string        `json:"category_id,omitempty"`
	ConditionID *string        `json:"condition_id,omitempty"`
	Price       *float64       `json:"price,omitempty"`
	IsFree      *bool          `json:"is_free,omitempty"`
	Status      *ListingStatus `json:"status,omitempty"`
	Location    *string        `json:"location,omitempty"`
}

func (p ListingPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.CategoryID == nil &&
		p.ConditionID == nil && p.Price == nil && p.IsFree == nil &&
		p.Status == nil && p.Location == nil
}

type SearchListingsParams struct {
	Query       string
	CategoryID  string
	ConditionID string
	Status      ListingStatus
	IsFree      *bool
	MinPrice    *float64
	MaxPrice    *float64
	Offset      int
	Limit       int
}
