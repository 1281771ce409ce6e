package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/pgconv"
	"rentimade/internal/usecase/queries"
)

const reviewListSelect = `
SELECT r.id, u.name AS user_name, r.rating, r.comment, r.created_at
FROM reviews r
JOIN users u ON u.id = r.user_id`

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row := r.db.QueryRow(ctx, `
SELECT r.id, r.user_id, u.name AS user_name, r.product_id, p.name AS product_name,
       r.order_id, r.rating, r.comment, r.created_at, r.updated_at
FROM reviews r
JOIN users u ON u.id = r.user_id
JOIN products p ON p.id = r.product_id
WHERE r.id = $1`, id)

	var rv queries.ReviewView
	err := row.Scan(
		&rv.ID, &rv.UserID, &rv.UserName, &rv.ProductID, &rv.ProductName,
		&rv.OrderID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by id", err)
	}
	return &rv, nil
}

// GetReviewOwnership backs authorization checks on review mutations.
func (r *ReviewReadStore) GetReviewOwnership(ctx context.Context, reviewID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	var userID, productID uuid.UUID
	err := r.db.QueryRow(ctx, `
SELECT user_id, product_id FROM reviews WHERE id = $1`, reviewID).Scan(&userID, &productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, uuid.Nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return uuid.Nil, uuid.Nil, infra.WrapRepoErr("failed to get review ownership", err)
	}
	return userID, productID, nil
}

func (r *ReviewReadStore) FindByProductFirstPage(ctx context.Context, productID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewListSelect+`
WHERE r.product_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`, productID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by product", err)
	}
	defer rows.Close()
	return scanReviewListItems(rows)
}

func (r *ReviewReadStore) FindByProductKeyset(ctx context.Context, productID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewListSelect+`
WHERE r.product_id = $1 AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`, productID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by product keyset", err)
	}
	defer rows.Close()
	return scanReviewListItems(rows)
}

func (r *ReviewReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewListSelect+`
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by user", err)
	}
	defer rows.Close()
	return scanReviewListItems(rows)
}

func (r *ReviewReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewListSelect+`
WHERE r.user_id = $1 AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by user keyset", err)
	}
	defer rows.Close()
	return scanReviewListItems(rows)
}

func (r *ReviewReadStore) GetProductRatingStats(ctx context.Context, productID uuid.UUID) (*queries.ProductRatingStats, error) {
	var stats queries.ProductRatingStats
	err := r.db.QueryRow(ctx, `
SELECT product_id, total_reviews, average_rating::float8
FROM product_rating_stats
WHERE product_id = $1`, productID).Scan(&stats.ProductID, &stats.TotalReviews, &stats.AverageRating)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// zero stats until the first review lands
			return &queries.ProductRatingStats{ProductID: productID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get product rating stats", err)
	}
	return &stats, nil
}

func scanReviewListItems(rows pgx.Rows) ([]*queries.ReviewListItem, error) {
	var items []*queries.ReviewListItem
	for rows.Next() {
		var item queries.ReviewListItem
		if err := rows.Scan(&item.ID, &item.UserName, &item.Rating, &item.Comment, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review list items", err)
	}
	return items, nil
}
