package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentimade/internal/domain/banner"
	"rentimade/internal/domain/category"
	"rentimade/internal/domain/order"
	"rentimade/internal/domain/product"
	"rentimade/internal/domain/review"
	"rentimade/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Products() ProductRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Users() UserRepository
	Addresses() AddressRepository
	BankDetails() BankDetailsRepository
	Categories() CategoryRepository
	Banners() BannerRepository
	Wishlists() WishlistRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderSnapshot, error)
	AddressByID(ctx context.Context, id uuid.UUID) (*AddressSnapshot, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
	BookedDates(ctx context.Context, productID uuid.UUID) ([]time.Time, error)
	ReviewExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
	WishlistContains(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}

type ProductRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *product.Product) error
	UpdateModeration(ctx context.Context, tx db.DBTX, id uuid.UUID, status product.Status, rejectionReason *string) error
	SetAvailable(ctx context.Context, tx db.DBTX, id uuid.UUID, available bool) error
	LockForBooking(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status, cancelledAt *time.Time) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, rev *review.Review) error
	Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	RecalcProductRatingStats(ctx context.Context, tx db.DBTX, productID uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, params CreateUserParams) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
	UpdateProfile(ctx context.Context, tx db.DBTX, userID uuid.UUID, name string, phone *string) error
	SetActive(ctx context.Context, tx db.DBTX, userID uuid.UUID, active bool) error
	SetRole(ctx context.Context, tx db.DBTX, userID uuid.UUID, role string) error
}

type AddressRepository interface {
	Create(ctx context.Context, tx db.DBTX, params CreateAddressParams) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error
	SetDefault(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error
}

type BankDetailsRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, userID uuid.UUID, accountHolder, accountNumber, ifsc string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *category.Category) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *category.Category) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type BannerRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *banner.Banner) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, b *banner.Banner) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type WishlistRepository interface {
	Add(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID) error
	Remove(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID) error
}
