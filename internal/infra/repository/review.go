package repository

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/domain/review"
	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO reviews (id, user_id, product_id, order_id, rating, comment)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`,
		rev.ID(), rev.UserID(), rev.ProductID(), rev.OrderID(),
		rev.Rating().Value(), rev.Comment().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, rev *review.Review) error {
	tag, err := tx.Exec(ctx, `
UPDATE reviews
SET rating = $2, comment = $3, updated_at = now()
WHERE id = $1`, reviewID, rev.Rating().Value(), rev.Comment().String())
	if err != nil {
		return classifyWriteErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return classifyWriteErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
