package response

import "rentimade/internal/usecase/queries"

type ProductListResponse struct {
	Items      []*queries.ProductListItem `json:"items"`
	NextCursor *string                    `json:"next_cursor,omitempty"`
}

func NewProductListResponse(items []*queries.ProductListItem, next *queries.Cursor) *ProductListResponse {
	if items == nil {
		items = []*queries.ProductListItem{}
	}
	return &ProductListResponse{Items: items, NextCursor: nextCursorString(next)}
}
