package repository

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/domain/category"
	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Create(ctx context.Context, tx db.DBTX, c *category.Category) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO categories (id, name, slug, sort_order)
VALUES ($1, $2, $3, $4)
RETURNING id`, c.ID(), c.Name(), c.Slug(), c.SortOrder()).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create category", err)
	}
	return id, nil
}

func (r *CategoryRepository) Update(ctx context.Context, tx db.DBTX, c *category.Category) error {
	tag, err := tx.Exec(ctx, `
UPDATE categories
SET name = $2, slug = $3, sort_order = $4, updated_at = now()
WHERE id = $1`, c.ID(), c.Name(), c.Slug(), c.SortOrder())
	if err != nil {
		return classifyWriteErr("failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return classifyWriteErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}
