package readstore

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/usecase/queries"
)

type WishlistReadStore struct {
	db db.DBTX
}

func NewWishlistReadStore(dbtx db.DBTX) *WishlistReadStore {
	return &WishlistReadStore{db: dbtx}
}

func (r *WishlistReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ProductListItem, error) {
	rows, err := r.db.Query(ctx, productListSelect+`
JOIN wishlist_items w ON w.product_id = p.id
WHERE w.user_id = $1
ORDER BY w.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wishlist", err)
	}
	defer rows.Close()
	return scanProductListItems(rows)
}

func (r *WishlistReadStore) FindProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
SELECT product_id
FROM wishlist_items
WHERE user_id = $1
ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wishlist product ids", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan wishlist product id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate wishlist product ids", err)
	}
	return ids, nil
}
