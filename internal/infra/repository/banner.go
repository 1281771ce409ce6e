package repository

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/domain/banner"
	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
)

type BannerRepository struct{}

func NewBannerRepository() *BannerRepository {
	return &BannerRepository{}
}

func (r *BannerRepository) Create(ctx context.Context, tx db.DBTX, b *banner.Banner) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO banners (id, title, image_url, link_url, is_active, sort_order)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`, b.ID(), b.Title(), b.ImageURL(), b.LinkURL(), b.IsActive(), b.SortOrder()).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create banner", err)
	}
	return id, nil
}

func (r *BannerRepository) Update(ctx context.Context, tx db.DBTX, b *banner.Banner) error {
	tag, err := tx.Exec(ctx, `
UPDATE banners
SET title = $2, image_url = $3, link_url = $4, is_active = $5, sort_order = $6, updated_at = now()
WHERE id = $1`, b.ID(), b.Title(), b.ImageURL(), b.LinkURL(), b.IsActive(), b.SortOrder())
	if err != nil {
		return classifyWriteErr("failed to update banner", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BannerRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return classifyWriteErr("failed to delete banner", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("banner not found", nil, infra.KindNotFound)
	}
	return nil
}
