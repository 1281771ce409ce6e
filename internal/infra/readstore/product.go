package readstore

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/pgconv"
	"rentimade/internal/usecase/queries"
)

const productViewSelect = `
SELECT p.id, p.owner_id, u.name AS owner_name, p.category_id, c.slug AS category_slug,
       p.name, p.description, p.brand, p.size, p.rental_per_day_paise, p.deposit_paise,
       p.image_urls, p.available_from, p.available_until, p.status, p.is_available,
       p.rejection_reason,
       COALESCE(s.average_rating, 0)::float8 AS average_rating,
       COALESCE(s.total_reviews, 0) AS review_count,
       p.created_at, p.updated_at
FROM products p
JOIN users u ON u.id = p.owner_id
JOIN categories c ON c.id = p.category_id
LEFT JOIN product_rating_stats s ON s.product_id = p.id`

const productListSelect = `
SELECT p.id, p.name, p.brand, p.size, p.rental_per_day_paise, p.deposit_paise,
       COALESCE(p.image_urls[1], '') AS image_url, c.slug AS category_slug,
       p.status, p.is_available, p.created_at
FROM products p
JOIN categories c ON c.id = p.category_id`

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := r.db.QueryRow(ctx, productViewSelect+` WHERE p.id = $1`, id)

	var (
		pv              queries.ProductView
		availableFrom   pgtype.Date
		availableUntil  pgtype.Date
		rejectionReason pgtype.Text
	)
	err := row.Scan(
		&pv.ID, &pv.OwnerID, &pv.OwnerName, &pv.CategoryID, &pv.CategorySlug,
		&pv.Name, &pv.Description, &pv.Brand, &pv.Size, &pv.RentalPerDay, &pv.Deposit,
		&pv.ImageURLs, &availableFrom, &availableUntil, &pv.Status, &pv.IsAvailable,
		&rejectionReason, &pv.AverageRating, &pv.ReviewCount,
		&pv.CreatedAt, &pv.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	pv.AvailableFrom = pgconv.DatePtrFromPgtype(availableFrom)
	pv.AvailableUntil = pgconv.DatePtrFromPgtype(availableUntil)
	pv.RejectionReason = pgconv.StringPtrFromPgtype(rejectionReason)
	return &pv, nil
}

func (r *ProductReadStore) FindApprovedFirstPage(ctx context.Context, filters queries.ProductFilters, limit int32) ([]*queries.ProductListItem, error) {
	sql, args := buildApprovedQuery(filters, nil, nil, limit)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved products", err)
	}
	defer rows.Close()
	return scanProductListItems(rows)
}

func (r *ProductReadStore) FindApprovedKeyset(ctx context.Context, filters queries.ProductFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ProductListItem, error) {
	sql, args := buildApprovedQuery(filters, &lastCreatedAt, &lastID, limit)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved products keyset", err)
	}
	defer rows.Close()
	return scanProductListItems(rows)
}

func (r *ProductReadStore) FindByOwnerFirstPage(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*queries.ProductListItem, error) {
	rows, err := r.db.Query(ctx, productListSelect+`
WHERE p.owner_id = $1
ORDER BY p.created_at DESC, p.id DESC
LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by owner", err)
	}
	defer rows.Close()
	return scanProductListItems(rows)
}

func (r *ProductReadStore) FindByOwnerKeyset(ctx context.Context, ownerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ProductListItem, error) {
	rows, err := r.db.Query(ctx, productListSelect+`
WHERE p.owner_id = $1 AND (p.created_at, p.id) < ($2, $3)
ORDER BY p.created_at DESC, p.id DESC
LIMIT $4`, ownerID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by owner keyset", err)
	}
	defer rows.Close()
	return scanProductListItems(rows)
}

func (r *ProductReadStore) FindByStatusFirstPage(ctx context.Context, status *string, limit int32) ([]*queries.ProductListItem, error) {
	sql, args := buildStatusQuery(status, nil, nil, limit)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by status", err)
	}
	defer rows.Close()
	return scanProductListItems(rows)
}

func (r *ProductReadStore) FindByStatusKeyset(ctx context.Context, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ProductListItem, error) {
	sql, args := buildStatusQuery(status, &lastCreatedAt, &lastID, limit)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by status keyset", err)
	}
	defer rows.Close()
	return scanProductListItems(rows)
}

// FindBookedDates returns every calendar day covered by a date-blocking
// order for the product, rental bounds inclusive.
func (r *ProductReadStore) FindBookedDates(ctx context.Context, productID uuid.UUID) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, `
SELECT DISTINCT d::date
FROM orders o,
     generate_series(o.start_date, o.end_date, interval '1 day') AS d
WHERE o.product_id = $1 AND o.status IN ('confirmed', 'delivered')
ORDER BY d::date`, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booked dates", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d pgtype.Date
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked date", err)
		}
		if ptr := pgconv.DatePtrFromPgtype(d); ptr != nil {
			dates = append(dates, *ptr)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked dates", err)
	}
	return dates, nil
}

func buildApprovedQuery(filters queries.ProductFilters, lastCreatedAt *time.Time, lastID *uuid.UUID, limit int32) (string, []any) {
	sql := productListSelect + `
WHERE p.status = 'approved' AND p.is_available`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filters.CategoryID != nil {
		sql += ` AND p.category_id = ` + arg(*filters.CategoryID)
	}
	if filters.Search != nil {
		sql += ` AND (p.name ILIKE ` + arg("%"+*filters.Search+"%") + ` OR p.brand ILIKE ` + arg("%"+*filters.Search+"%") + `)`
	}
	if filters.Size != nil {
		sql += ` AND p.size = ` + arg(*filters.Size)
	}
	if filters.MinPrice != nil {
		sql += ` AND p.rental_per_day_paise >= ` + arg(*filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		sql += ` AND p.rental_per_day_paise <= ` + arg(*filters.MaxPrice)
	}
	if lastCreatedAt != nil && lastID != nil {
		sql += ` AND (p.created_at, p.id) < (` + arg(*lastCreatedAt) + `, ` + arg(*lastID) + `)`
	}
	sql += `
ORDER BY p.created_at DESC, p.id DESC
LIMIT ` + arg(limit)
	return sql, args
}

func buildStatusQuery(status *string, lastCreatedAt *time.Time, lastID *uuid.UUID, limit int32) (string, []any) {
	sql := productListSelect + `
WHERE TRUE`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if status != nil {
		sql += ` AND p.status = ` + arg(*status)
	}
	if lastCreatedAt != nil && lastID != nil {
		sql += ` AND (p.created_at, p.id) < (` + arg(*lastCreatedAt) + `, ` + arg(*lastID) + `)`
	}
	sql += `
ORDER BY p.created_at DESC, p.id DESC
LIMIT ` + arg(limit)
	return sql, args
}

func scanProductListItems(rows pgx.Rows) ([]*queries.ProductListItem, error) {
	var items []*queries.ProductListItem
	for rows.Next() {
		var item queries.ProductListItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Brand, &item.Size, &item.RentalPerDay, &item.Deposit,
			&item.ImageURL, &item.CategorySlug, &item.Status, &item.IsAvailable, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product list items", err)
	}
	return items, nil
}
