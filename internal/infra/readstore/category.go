package readstore

import (
	"context"

	"rentimade/internal/infra"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/pgconv"
	"rentimade/internal/usecase/queries"
)

type CategoryReadStore struct {
	db db.DBTX
}

func NewCategoryReadStore(dbtx db.DBTX) *CategoryReadStore {
	return &CategoryReadStore{db: dbtx}
}

func (r *CategoryReadStore) FindAll(ctx context.Context) ([]*queries.CategoryView, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, name, slug, sort_order
FROM categories
ORDER BY sort_order, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var views []*queries.CategoryView
	for rows.Next() {
		var cv queries.CategoryView
		if err := rows.Scan(&cv.ID, &cv.Name, &cv.Slug, &cv.SortOrder); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category", err)
		}
		views = append(views, &cv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate categories", err)
	}
	return views, nil
}

func (r *CategoryReadStore) FindBySlug(ctx context.Context, slug string) (*queries.CategoryView, error) {
	var cv queries.CategoryView
	err := r.db.QueryRow(ctx, `
SELECT id, name, slug, sort_order
FROM categories
WHERE slug = $1`, slug).Scan(&cv.ID, &cv.Name, &cv.Slug, &cv.SortOrder)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get category by slug", err)
	}
	return &cv, nil
}
