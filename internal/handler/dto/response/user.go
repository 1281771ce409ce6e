package response

import "rentimade/internal/usecase/queries"

type UserListResponse struct {
	Items      []*queries.UserListItem `json:"items"`
	NextCursor *string                 `json:"next_cursor,omitempty"`
}

func NewUserListResponse(items []*queries.UserListItem, next *queries.Cursor) *UserListResponse {
	if items == nil {
		items = []*queries.UserListItem{}
	}
	return &UserListResponse{Items: items, NextCursor: nextCursorString(next)}
}
