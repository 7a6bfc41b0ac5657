package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	// UserStatusDeleted is a terminal soft delete; the row is retained but
	// excluded from search results.
	UserStatusDeleted UserStatus = "DELETED"
)

// User is the local profile row keyed by the identity provider's user id.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	Role         UserRole   `json:"role"`
	Verified     bool       `json:"verified"`
	Balance      float64    `json:"balance"`
	StrikeCount  int        `json:"strike_count"`
	Status       UserStatus `json:"status"`
	CampusRegion *string    `json:"campus_region"`
	ZipCode      *string    `json:"zip_code"`
	RatingAvg    float64    `json:"rating_avg"`
	RatingCount  int        `json:"rating_count"`
	AvatarURL    *string    `json:"avatar_url"`
	PhoneNumber  *string    `json:"phone_number"`
	CreatedAt    time.Time  `json:"created_at"`
}

// PublicUser is the subset of a profile visible to other users in search.
type PublicUser struct {
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	AvatarURL    *string `json:"avatar_url"`
	ZipCode      *string `json:"zip_code"`
	CampusRegion *string `json:"campus_region"`
	RatingAvg    float64 `json:"rating_avg"`
	RatingCount  int     `json:"rating_count"`
	PhoneNumber  *string `json:"phone_number"`
}

type UserPatch struct {
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	CampusRegion *string `json:"campus_region,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
}

func (p UserPatch) IsEmpty() bool {
	return p.FullName == nil && p.Email == nil && p.CampusRegion == nil &&
		p.PhoneNumber == nil && p.AvatarURL == nil
}
