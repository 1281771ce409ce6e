package response

import "rentimade/internal/usecase/queries"

type OrderListResponse struct {
	Items      []*queries.OrderListItem `json:"items"`
	NextCursor *string                  `json:"next_cursor,omitempty"`
}

func NewOrderListResponse(items []*queries.OrderListItem, next *queries.Cursor) *OrderListResponse {
	if items == nil {
		items = []*queries.OrderListItem{}
	}
	return &OrderListResponse{Items: items, NextCursor: nextCursorString(next)}
}
