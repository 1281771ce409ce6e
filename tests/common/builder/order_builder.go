//go:build unit || e2e

package builder

import (
	"time"

	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID          uuid.UUID
	RenterID    uuid.UUID
	RenterEmail string
	LenderID    uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	AddressID   uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	RentPaise   int64
	Deposit     int64
	Status      string
	CreatedAt   time.Time
}

func NewOrderBuilder() *OrderBuilder {
	start := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	return &OrderBuilder{
		ID:          uuid.New(),
		RenterID:    uuid.New(),
		RenterEmail: "renter@example.com",
		LenderID:    uuid.New(),
		ProductID:   uuid.New(),
		ProductName: "Banarasi Silk Lehenga",
		AddressID:   uuid.New(),
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		RentPaise:   150000,
		Deposit:     100000,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) BuildCreateRequestDTO() reqdto.CreateOrderRequest {
	return reqdto.CreateOrderRequest{
		ProductID: o.ProductID,
		StartDate: o.StartDate.Format(time.DateOnly),
		EndDate:   o.EndDate.Format(time.DateOnly),
		AddressID: o.AddressID,
	}
}

func (o *OrderBuilder) BuildViewQuery() *queries.OrderView {
	return &queries.OrderView{
		ID:             o.ID,
		RenterID:       o.RenterID,
		RenterEmail:    o.RenterEmail,
		LenderID:       o.LenderID,
		ProductID:      o.ProductID,
		ProductName:    o.ProductName,
		StartDate:      o.StartDate,
		EndDate:        o.EndDate,
		RentPaise:      o.RentPaise,
		DepositPaise:   o.Deposit,
		TotalPaise:     o.RentPaise + o.Deposit,
		Status:         o.Status,
		AddressLine1:   "12 MG Road",
		AddressCity:    "Indore",
		AddressPincode: "452001",
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.CreatedAt,
	}
}

func (o *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:          o.ID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		StartDate:   o.StartDate,
		EndDate:     o.EndDate,
		TotalPaise:  o.RentPaise + o.Deposit,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}
