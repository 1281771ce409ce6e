package request

import (
	"rentimade/internal/domain/category"
)

type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug"`
	SortOrder int32  `json:"sort_order"`
}

func (r *CreateCategoryRequest) ToDomain() (*category.Category, error) {
	return category.NewCategory(r.Name, r.Slug, r.SortOrder)
}

type UpdateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug"`
	SortOrder int32  `json:"sort_order"`
}
