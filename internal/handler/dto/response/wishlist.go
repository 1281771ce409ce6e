package response

import "github.com/google/uuid"

type WishlistToggleResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Added     bool      `json:"added"`
}
