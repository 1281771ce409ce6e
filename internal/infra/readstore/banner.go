package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/pgconv"
	"rentimade/internal/usecase/queries"
)

type BannerReadStore struct {
	db db.DBTX
}

func NewBannerReadStore(dbtx db.DBTX) *BannerReadStore {
	return &BannerReadStore{db: dbtx}
}

func (r *BannerReadStore) FindActive(ctx context.Context) ([]*queries.BannerView, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, title, image_url, link_url, is_active, sort_order
FROM banners
WHERE is_active
ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active banners", err)
	}
	defer rows.Close()
	return scanBanners(rows)
}

func (r *BannerReadStore) FindAll(ctx context.Context) ([]*queries.BannerView, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, title, image_url, link_url, is_active, sort_order
FROM banners
ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list banners", err)
	}
	defer rows.Close()
	return scanBanners(rows)
}

func (r *BannerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BannerView, error) {
	var bv queries.BannerView
	err := r.db.QueryRow(ctx, `
SELECT id, title, image_url, link_url, is_active, sort_order
FROM banners
WHERE id = $1`, id).Scan(&bv.ID, &bv.Title, &bv.ImageURL, &bv.LinkURL, &bv.IsActive, &bv.SortOrder)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("banner not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get banner by id", err)
	}
	return &bv, nil
}

func scanBanners(rows pgx.Rows) ([]*queries.BannerView, error) {
	var views []*queries.BannerView
	for rows.Next() {
		var bv queries.BannerView
		if err := rows.Scan(&bv.ID, &bv.Title, &bv.ImageURL, &bv.LinkURL, &bv.IsActive, &bv.SortOrder); err != nil {
			return nil, infra.WrapRepoErr("failed to scan banner", err)
		}
		views = append(views, &bv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate banners", err)
	}
	return views, nil
}
