package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/pgconv"
	"rentimade/internal/usecase/queries"
)

const orderListSelect = `
SELECT o.id, o.product_id, p.name AS product_name, COALESCE(p.image_urls[1], '') AS product_image,
       o.start_date, o.end_date, o.rent_paise + o.deposit_paise AS total_paise,
       o.status, o.created_at
FROM orders o
JOIN products p ON p.id = o.product_id`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, `
SELECT o.id, o.renter_id, u.email AS renter_email, o.lender_id, o.product_id,
       p.name AS product_name, COALESCE(p.image_urls[1], '') AS product_image,
       o.start_date, o.end_date, o.rent_paise, o.deposit_paise,
       o.rent_paise + o.deposit_paise AS total_paise, o.status,
       o.address_line1, o.address_line2, o.address_city, o.address_pincode,
       o.cancelled_at, o.created_at, o.updated_at
FROM orders o
JOIN users u ON u.id = o.renter_id
JOIN products p ON p.id = o.product_id
WHERE o.id = $1`, id)

	var (
		ov          queries.OrderView
		startDate   pgtype.Date
		endDate     pgtype.Date
		cancelledAt pgtype.Timestamptz
	)
	err := row.Scan(
		&ov.ID, &ov.RenterID, &ov.RenterEmail, &ov.LenderID, &ov.ProductID,
		&ov.ProductName, &ov.ProductImage,
		&startDate, &endDate, &ov.RentPaise, &ov.DepositPaise,
		&ov.TotalPaise, &ov.Status,
		&ov.AddressLine1, &ov.AddressLine2, &ov.AddressCity, &ov.AddressPincode,
		&cancelledAt, &ov.CreatedAt, &ov.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	if d := pgconv.DatePtrFromPgtype(startDate); d != nil {
		ov.StartDate = *d
	}
	if d := pgconv.DatePtrFromPgtype(endDate); d != nil {
		ov.EndDate = *d
	}
	ov.CancelledAt = pgconv.TimePtrFromPgtype(cancelledAt)
	return &ov, nil
}

func (r *OrderReadStore) FindByRenterFirstPage(ctx context.Context, renterID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, orderListSelect+`
WHERE o.renter_id = $1
ORDER BY o.created_at DESC, o.id DESC
LIMIT $2`, renterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by renter", err)
	}
	defer rows.Close()
	return scanOrderListItems(rows)
}

func (r *OrderReadStore) FindByRenterKeyset(ctx context.Context, renterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, orderListSelect+`
WHERE o.renter_id = $1 AND (o.created_at, o.id) < ($2, $3)
ORDER BY o.created_at DESC, o.id DESC
LIMIT $4`, renterID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by renter keyset", err)
	}
	defer rows.Close()
	return scanOrderListItems(rows)
}

func (r *OrderReadStore) FindByLenderFirstPage(ctx context.Context, lenderID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, orderListSelect+`
WHERE o.lender_id = $1
ORDER BY o.created_at DESC, o.id DESC
LIMIT $2`, lenderID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by lender", err)
	}
	defer rows.Close()
	return scanOrderListItems(rows)
}

func (r *OrderReadStore) FindByLenderKeyset(ctx context.Context, lenderID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, orderListSelect+`
WHERE o.lender_id = $1 AND (o.created_at, o.id) < ($2, $3)
ORDER BY o.created_at DESC, o.id DESC
LIMIT $4`, lenderID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by lender keyset", err)
	}
	defer rows.Close()
	return scanOrderListItems(rows)
}

func (r *OrderReadStore) FindAllFirstPage(ctx context.Context, filters queries.OrderFilters, limit int32) ([]*queries.OrderListItem, error) {
	if filters.Status != nil {
		rows, err := r.db.Query(ctx, orderListSelect+`
WHERE o.status = $1
ORDER BY o.created_at DESC, o.id DESC
LIMIT $2`, *filters.Status, limit)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list orders", err)
		}
		defer rows.Close()
		return scanOrderListItems(rows)
	}

	rows, err := r.db.Query(ctx, orderListSelect+`
ORDER BY o.created_at DESC, o.id DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()
	return scanOrderListItems(rows)
}

func (r *OrderReadStore) FindAllKeyset(ctx context.Context, filters queries.OrderFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	if filters.Status != nil {
		rows, err := r.db.Query(ctx, orderListSelect+`
WHERE o.status = $1 AND (o.created_at, o.id) < ($2, $3)
ORDER BY o.created_at DESC, o.id DESC
LIMIT $4`, *filters.Status, lastCreatedAt, lastID, limit)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list orders keyset", err)
		}
		defer rows.Close()
		return scanOrderListItems(rows)
	}

	rows, err := r.db.Query(ctx, orderListSelect+`
WHERE (o.created_at, o.id) < ($1, $2)
ORDER BY o.created_at DESC, o.id DESC
LIMIT $3`, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders keyset", err)
	}
	defer rows.Close()
	return scanOrderListItems(rows)
}

func scanOrderListItems(rows pgx.Rows) ([]*queries.OrderListItem, error) {
	var items []*queries.OrderListItem
	for rows.Next() {
		var (
			item      queries.OrderListItem
			startDate pgtype.Date
			endDate   pgtype.Date
		)
		err := rows.Scan(
			&item.ID, &item.ProductID, &item.ProductName, &item.ProductImage,
			&startDate, &endDate, &item.TotalPaise, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		if d := pgconv.DatePtrFromPgtype(startDate); d != nil {
			item.StartDate = *d
		}
		if d := pgconv.DatePtrFromPgtype(endDate); d != nil {
			item.EndDate = *d
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order list items", err)
	}
	return items, nil
}
