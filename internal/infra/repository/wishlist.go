package repository

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/infra/db"
)

type WishlistRepository struct{}

func NewWishlistRepository() *WishlistRepository {
	return &WishlistRepository{}
}

func (r *WishlistRepository) Add(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
INSERT INTO wishlist_items (user_id, product_id)
VALUES ($1, $2)
ON CONFLICT (user_id, product_id) DO NOTHING`, userID, productID)
	if err != nil {
		return classifyWriteErr("failed to add wishlist item", err)
	}
	return nil
}

func (r *WishlistRepository) Remove(ctx context.Context, tx db.DBTX, userID, productID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
DELETE FROM wishlist_items
WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return classifyWriteErr("failed to remove wishlist item", err)
	}
	return nil
}
