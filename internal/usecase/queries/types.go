package queries

import (
	"time"

	"github.com/google/uuid"

	"rentimade/internal/pkg/errs"
)

// Role strings as they appear in JWT claims and read models.
const (
	RoleRenter = "renter"
	RoleLender = "lender"
	RoleAdmin  = "admin"
)

var (
	ErrInvalidCursor = errs.New("invalid cursor")
	ErrAccessDenied  = errs.New("access denied")
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type CategoryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int32     `json:"sort_order"`
}

type BannerView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	IsActive  bool      `json:"is_active"`
	SortOrder int32     `json:"sort_order"`
}

type AddressView struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Line1     string    `json:"line1"`
	Line2     string    `json:"line2"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	IsDefault bool      `json:"is_default"`
}

type BankDetailsView struct {
	AccountHolder       string `json:"account_holder"`
	AccountNumberMasked string `json:"account_number_masked"`
	IFSC                string `json:"ifsc"`
}

// EarningsView aggregates a lender's income from completed rentals.
type EarningsView struct {
	LenderID       uuid.UUID `json:"lender_id"`
	CompletedCount int64     `json:"completed_count"`
	TotalRentPaise int64     `json:"total_rent_paise"`
}

type UserListItem struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
