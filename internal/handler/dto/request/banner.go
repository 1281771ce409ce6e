package request

import (
	"rentimade/internal/domain/banner"
)

type CreateBannerRequest struct {
	Title     string `json:"title" binding:"required"`
	ImageURL  string `json:"image_url" binding:"required,url"`
	LinkURL   string `json:"link_url"`
	IsActive  bool   `json:"is_active"`
	SortOrder int32  `json:"sort_order"`
}

func (r *CreateBannerRequest) ToDomain() (*banner.Banner, error) {
	return banner.NewBanner(r.Title, r.ImageURL, r.LinkURL, r.IsActive, r.SortOrder)
}

type UpdateBannerRequest struct {
	Title     string `json:"title" binding:"required"`
	ImageURL  string `json:"image_url" binding:"required,url"`
	LinkURL   string `json:"link_url"`
	IsActive  bool   `json:"is_active"`
	SortOrder int32  `json:"sort_order"`
}
