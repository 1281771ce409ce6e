package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentimade/internal/domain/availability"
	"rentimade/internal/infra"
	"rentimade/internal/pkg/clock"
	"rentimade/internal/pkg/errs"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrProductAccess   = errs.New("product access denied")
)

type ProductView struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	OwnerName       string     `json:"owner_name"`
	CategoryID      uuid.UUID  `json:"category_id"`
	CategorySlug    string     `json:"category_slug"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Brand           string     `json:"brand"`
	Size            string     `json:"size"`
	RentalPerDay    int64      `json:"rental_per_day_paise"`
	Deposit         int64      `json:"deposit_paise"`
	ImageURLs       []string   `json:"image_urls"`
	AvailableFrom   *time.Time `json:"available_from,omitempty"`
	AvailableUntil  *time.Time `json:"available_until,omitempty"`
	Status          string     `json:"status"`
	IsAvailable     bool       `json:"is_available"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	AverageRating   float64    `json:"average_rating"`
	ReviewCount     int32      `json:"review_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ProductListItem struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Size         string    `json:"size"`
	RentalPerDay int64     `json:"rental_per_day_paise"`
	Deposit      int64     `json:"deposit_paise"`
	ImageURL     string    `json:"image_url"`
	CategorySlug string    `json:"category_slug"`
	Status       string    `json:"status"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductFilters struct {
	CategoryID *uuid.UUID
	Search     *string
	Size       *string
	MinPrice   *int64
	MaxPrice   *int64
}

// AvailabilityView is the calendar payload for a product's rental window.
// Dates are formatted as YYYY-MM-DD.
type AvailabilityView struct {
	ProductID     uuid.UUID `json:"product_id"`
	SelectableMin string    `json:"selectable_min"`
	SelectableMax *string   `json:"selectable_max,omitempty"`
	BookedDates   []string  `json:"booked_dates"`
	Privileged    bool      `json:"privileged"`
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindApprovedFirstPage(ctx context.Context, filters ProductFilters, limit int32) ([]*ProductListItem, error)
	FindApprovedKeyset(ctx context.Context, filters ProductFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ProductListItem, error)
	FindByOwnerFirstPage(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*ProductListItem, error)
	FindByOwnerKeyset(ctx context.Context, ownerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ProductListItem, error)
	FindByStatusFirstPage(ctx context.Context, status *string, limit int32) ([]*ProductListItem, error)
	FindByStatusKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ProductListItem, error)
	FindBookedDates(ctx context.Context, productID uuid.UUID) ([]time.Time, error)
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID, viewerRole string) (*ProductView, error)
	ListApproved(ctx context.Context, filters ProductFilters, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error)
	ListByStatus(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error)
	GetAvailability(ctx context.Context, productID uuid.UUID, viewerID *uuid.UUID, viewerRole string) (*AvailabilityView, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
	clock     clock.Clock
}

func NewProductQueries(readStore ProductReadStore, clk clock.Clock) ProductQueries {
	return &productQueriesImpl{readStore: readStore, clock: clk}
}

func isPrivilegedViewer(ownerID uuid.UUID, viewerID *uuid.UUID, viewerRole string) bool {
	if viewerRole == RoleAdmin {
		return true
	}
	return viewerID != nil && *viewerID == ownerID
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID, viewerRole string) (*ProductView, error) {
	pv, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if pv.Status != "approved" && !isPrivilegedViewer(pv.OwnerID, viewerID, viewerRole) {
		return nil, ErrProductNotFound
	}
	return pv, nil
}

func (q *productQueriesImpl) ListApproved(ctx context.Context, filters ProductFilters, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ProductListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindApprovedFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindApprovedKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *productQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ProductListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByOwnerFirstPage(ctx, ownerID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByOwnerKeyset(ctx, ownerID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *productQueriesImpl) ListByStatus(ctx context.Context, status *string, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ProductListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByStatusFirstPage(ctx, status, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.readStore.FindByStatusKeyset(ctx, status, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *productQueriesImpl) GetAvailability(ctx context.Context, productID uuid.UUID, viewerID *uuid.UUID, viewerRole string) (*AvailabilityView, error) {
	pv, err := q.readStore.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	privileged := isPrivilegedViewer(pv.OwnerID, viewerID, viewerRole)
	if pv.Status != "approved" && !privileged {
		return nil, ErrProductNotFound
	}

	window, err := availability.NewWindow(pv.AvailableFrom, pv.AvailableUntil)
	if err != nil {
		return nil, errs.Wrap(err, "product has an invalid availability window")
	}
	booked, err := q.readStore.FindBookedDates(ctx, productID)
	if err != nil {
		return nil, err
	}

	resolver := availability.NewResolver(window, booked, privileged, q.clock.Now())
	minDate, maxDate := resolver.SelectableRange()

	view := &AvailabilityView{
		ProductID:     productID,
		SelectableMin: minDate.Format("2006-01-02"),
		BookedDates:   make([]string, 0, len(booked)),
		Privileged:    privileged,
	}
	if maxDate != nil {
		s := maxDate.Format("2006-01-02")
		view.SelectableMax = &s
	}
	for _, d := range booked {
		view.BookedDates = append(view.BookedDates, availability.DateOf(d).Format("2006-01-02"))
	}
	return view, nil
}
