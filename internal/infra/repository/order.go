package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rentimade/internal/domain/order"
	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/pgconv"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO orders (id, renter_id, lender_id, product_id, start_date, end_date,
                    rent_paise, deposit_paise, status,
                    address_line1, address_line2, address_city, address_pincode)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`,
		o.ID(), o.RenterID(), o.OwnerID(), o.ProductID(),
		pgconv.DateToPgtype(o.Period().Start()), pgconv.DateToPgtype(o.Period().End()),
		o.Rent().Paise(), o.Deposit().Paise(), o.Status().String(),
		o.Address().Line1, o.Address().Line2, o.Address().City, o.Address().Pincode,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create order", err)
	}
	return id, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status, cancelledAt *time.Time) error {
	tag, err := tx.Exec(ctx, `
UPDATE orders
SET status = $2, cancelled_at = $3, updated_at = now()
WHERE id = $1`, id, status.String(), cancelledAt)
	if err != nil {
		return classifyWriteErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
