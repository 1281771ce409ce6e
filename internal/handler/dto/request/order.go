package request

import (
	"time"

	"github.com/google/uuid"

	"rentimade/internal/domain/order"
)

type CreateOrderRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	AddressID uuid.UUID `json:"address_id" binding:"required"`
}

func (r *CreateOrderRequest) ParsePeriod() (order.RentalPeriod, error) {
	start, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return order.RentalPeriod{}, order.ErrInvalidPeriod
	}
	end, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return order.RentalPeriod{}, order.ErrInvalidPeriod
	}
	return order.NewRentalPeriod(start, end)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed delivered returned cancelled"`
}
