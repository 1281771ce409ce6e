package repository

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/domain/product"
	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/pgconv"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO products (id, owner_id, category_id, name, description, brand, size,
                      rental_per_day_paise, deposit_paise, image_urls,
                      available_from, available_until, status, is_available)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`,
		p.ID(), p.OwnerID(), p.CategoryID(), p.Name().String(), p.Description(), p.Brand(), p.Size().String(),
		p.RentalPerDay().Paise(), p.Deposit().Paise(), p.ImageURLs(),
		pgconv.DatePtrToPgtype(p.Window().From()), pgconv.DatePtrToPgtype(p.Window().Until()),
		p.Status().String(), p.IsAvailable(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create product", err)
	}
	return id, nil
}

func (r *ProductRepository) Update(ctx context.Context, tx db.DBTX, p *product.Product) error {
	tag, err := tx.Exec(ctx, `
UPDATE products
SET name = $2, description = $3, brand = $4, size = $5,
    rental_per_day_paise = $6, deposit_paise = $7, image_urls = $8,
    available_from = $9, available_until = $10, updated_at = now()
WHERE id = $1`,
		p.ID(), p.Name().String(), p.Description(), p.Brand(), p.Size().String(),
		p.RentalPerDay().Paise(), p.Deposit().Paise(), p.ImageURLs(),
		pgconv.DatePtrToPgtype(p.Window().From()), pgconv.DatePtrToPgtype(p.Window().Until()),
	)
	if err != nil {
		return classifyWriteErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) UpdateModeration(ctx context.Context, tx db.DBTX, id uuid.UUID, status product.Status, rejectionReason *string) error {
	tag, err := tx.Exec(ctx, `
UPDATE products
SET status = $2, rejection_reason = $3, updated_at = now()
WHERE id = $1`, id, status.String(), rejectionReason)
	if err != nil {
		return classifyWriteErr("failed to update product moderation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) SetAvailable(ctx context.Context, tx db.DBTX, id uuid.UUID, available bool) error {
	tag, err := tx.Exec(ctx, `
UPDATE products
SET is_available = $2, updated_at = now()
WHERE id = $1`, id, available)
	if err != nil {
		return classifyWriteErr("failed to set product availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

// LockForBooking takes a row lock so overlapping bookings for the same
// listing serialize on the product row.
func (r *ProductRepository) LockForBooking(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	var locked uuid.UUID
	err := tx.QueryRow(ctx, `SELECT id FROM products WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock product", err)
	}
	return nil
}
