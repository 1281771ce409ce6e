package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrOrderAccess   = errs.New("order access denied")
)

type OrderView struct {
	ID             uuid.UUID  `json:"id"`
	RenterID       uuid.UUID  `json:"renter_id"`
	RenterEmail    string     `json:"renter_email"`
	LenderID       uuid.UUID  `json:"lender_id"`
	ProductID      uuid.UUID  `json:"product_id"`
	ProductName    string     `json:"product_name"`
	ProductImage   string     `json:"product_image"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	RentPaise      int64      `json:"rent_paise"`
	DepositPaise   int64      `json:"deposit_paise"`
	TotalPaise     int64      `json:"total_paise"`
	Status         string     `json:"status"`
	AddressLine1   string     `json:"address_line1"`
	AddressLine2   string     `json:"address_line2"`
	AddressCity    string     `json:"address_city"`
	AddressPincode string     `json:"address_pincode"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type OrderListItem struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	TotalPaise   int64     `json:"total_paise"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type OrderFilters struct {
	Status *string
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByRenterFirstPage(ctx context.Context, renterID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindByRenterKeyset(ctx context.Context, renterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindByLenderFirstPage(ctx context.Context, lenderID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindByLenderKeyset(ctx context.Context, lenderID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindAllFirstPage(ctx context.Context, filters OrderFilters, limit int32) ([]*OrderListItem, error)
	FindAllKeyset(ctx context.Context, filters OrderFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*OrderView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
	ListByLender(ctx context.Context, lenderID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
	ListAll(ctx context.Context, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*OrderView, error) {
	ov, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if actorRole != RoleAdmin && ov.RenterID != actorID && ov.LenderID != actorID {
		return nil, ErrOrderAccess
	}
	return ov, nil
}

func (q *orderQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*OrderListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByRenterFirstPage(ctx, renterID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByRenterKeyset(ctx, renterID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	return paginateOrders(rows, limit)
}

func (q *orderQueriesImpl) ListByLender(ctx context.Context, lenderID uuid.UUID, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*OrderListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByLenderFirstPage(ctx, lenderID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByLenderKeyset(ctx, lenderID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	return paginateOrders(rows, limit)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*OrderListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindAllFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindAllKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	return paginateOrders(rows, limit)
}

func paginateOrders(rows []*OrderListItem, limit int) ([]*OrderListItem, *Cursor, error) {
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
