package uow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/pgconv"
	"rentimade/internal/usecase/shared"
)

// commandReads serves the write side's validation lookups. It runs on
// whatever DBTX it was built with, so inside a transaction it sees that
// transaction's writes.
type commandReads struct {
	dbtx db.DBTX
}

func (c *commandReads) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	row := c.dbtx.QueryRow(ctx, `
SELECT id, owner_id, category_id, name, size, rental_per_day_paise, deposit_paise,
       available_from, available_until, status, is_available
FROM products
WHERE id = $1`, id)

	var (
		snapshot       shared.ProductSnapshot
		availableFrom  pgtype.Date
		availableUntil pgtype.Date
	)
	err := row.Scan(
		&snapshot.ID, &snapshot.OwnerID, &snapshot.CategoryID, &snapshot.Name, &snapshot.Size,
		&snapshot.RentalPerDay, &snapshot.Deposit,
		&availableFrom, &availableUntil, &snapshot.Status, &snapshot.IsAvailable,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read product snapshot", err)
	}
	snapshot.AvailableFrom = pgconv.DatePtrFromPgtype(availableFrom)
	snapshot.AvailableUntil = pgconv.DatePtrFromPgtype(availableUntil)
	return &snapshot, nil
}

func (c *commandReads) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	row := c.dbtx.QueryRow(ctx, `
SELECT id, renter_id, lender_id, product_id, start_date, end_date, status
FROM orders
WHERE id = $1`, id)

	var (
		snapshot  shared.OrderSnapshot
		startDate pgtype.Date
		endDate   pgtype.Date
	)
	err := row.Scan(
		&snapshot.ID, &snapshot.RenterID, &snapshot.LenderID, &snapshot.ProductID,
		&startDate, &endDate, &snapshot.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read order snapshot", err)
	}
	if d := pgconv.DatePtrFromPgtype(startDate); d != nil {
		snapshot.StartDate = *d
	}
	if d := pgconv.DatePtrFromPgtype(endDate); d != nil {
		snapshot.EndDate = *d
	}
	return &snapshot, nil
}

func (c *commandReads) AddressByID(ctx context.Context, id uuid.UUID) (*shared.AddressSnapshot, error) {
	var snapshot shared.AddressSnapshot
	err := c.dbtx.QueryRow(ctx, `
SELECT id, user_id, line1, line2, city, pincode
FROM addresses
WHERE id = $1`, id).Scan(
		&snapshot.ID, &snapshot.UserID, &snapshot.Line1, &snapshot.Line2,
		&snapshot.City, &snapshot.Pincode,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("address not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read address snapshot", err)
	}
	return &snapshot, nil
}

func (c *commandReads) CategoryByID(ctx context.Context, id uuid.UUID) (*shared.CategorySnapshot, error) {
	var snapshot shared.CategorySnapshot
	err := c.dbtx.QueryRow(ctx, `
SELECT id, name, slug
FROM categories
WHERE id = $1`, id).Scan(&snapshot.ID, &snapshot.Name, &snapshot.Slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read category snapshot", err)
	}
	return &snapshot, nil
}

func (c *commandReads) BookedDates(ctx context.Context, productID uuid.UUID) ([]time.Time, error) {
	rows, err := c.dbtx.Query(ctx, `
SELECT DISTINCT d::date
FROM orders o,
     generate_series(o.start_date, o.end_date, interval '1 day') AS d
WHERE o.product_id = $1 AND o.status IN ('confirmed', 'delivered')
ORDER BY d::date`, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read booked dates", err)
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

func (c *commandReads) ReviewExistsForOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var exists bool
	err := c.dbtx.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM reviews WHERE order_id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}

func (c *commandReads) WishlistContains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var exists bool
	err := c.dbtx.QueryRow(ctx, `
SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE user_id = $1 AND product_id = $2)`, userID, productID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check wishlist membership", err)
	}
	return exists, nil
}
