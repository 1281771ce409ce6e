package response

import (
	"github.com/google/uuid"

	"rentimade/internal/usecase/queries"
)

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

// nextCursorString flattens a pagination cursor into the opaque token
// clients pass back via the "cursor" query parameter.
func nextCursorString(next *queries.Cursor) *string {
	if next == nil {
		return nil
	}
	return &next.After
}
