package repository

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/infra/db"
)

type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

// RecalcProductRatingStats rebuilds the aggregate from the reviews table
// inside the same transaction as the mutation that invalidated it.
func (r *RatingStatsRepository) RecalcProductRatingStats(ctx context.Context, tx db.DBTX, productID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
INSERT INTO product_rating_stats (product_id, total_reviews, average_rating, updated_at)
SELECT $1, COUNT(*), COALESCE(AVG(rating), 0), now()
FROM reviews
WHERE product_id = $1
ON CONFLICT (product_id) DO UPDATE
SET total_reviews = EXCLUDED.total_reviews,
    average_rating = EXCLUDED.average_rating,
    updated_at = EXCLUDED.updated_at`, productID)
	if err != nil {
		return classifyWriteErr("failed to recalc product rating stats", err)
	}
	return nil
}
