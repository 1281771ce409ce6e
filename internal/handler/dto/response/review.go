package response

import "rentimade/internal/usecase/queries"

type ReviewListResponse struct {
	Items      []*queries.ReviewListItem `json:"items"`
	NextCursor *string                   `json:"next_cursor,omitempty"`
}

func NewReviewListResponse(items []*queries.ReviewListItem, next *queries.Cursor) *ReviewListResponse {
	if items == nil {
		items = []*queries.ReviewListItem{}
	}
	return &ReviewListResponse{Items: items, NextCursor: nextCursorString(next)}
}

// ProductReviewsResponse pairs a page of reviews with the product's
// aggregate rating so listing pages need a single call.
type ProductReviewsResponse struct {
	Stats      *queries.ProductRatingStats `json:"stats"`
	Items      []*queries.ReviewListItem   `json:"items"`
	NextCursor *string                     `json:"next_cursor,omitempty"`
}
