//go:build unit || e2e

package builder

import (
	"time"

	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	OwnerName    string
	CategoryID   uuid.UUID
	CategorySlug string
	Name         string
	Brand        string
	Size         string
	RentalPerDay int64
	Deposit      int64
	ImageURLs    []string
	Status       string
	IsAvailable  bool
	CreatedAt    time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		OwnerName:    "Test Lender",
		CategoryID:   uuid.New(),
		CategorySlug: "lehengas",
		Name:         "Banarasi Silk Lehenga",
		Brand:        "Sabyasachi",
		Size:         "M",
		RentalPerDay: 50000,
		Deposit:      100000,
		ImageURLs:    []string{"https://cdn.example.com/lehenga-1.jpg"},
		Status:       "approved",
		IsAvailable:  true,
		CreatedAt:    time.Now(),
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		CategoryID:        p.CategoryID,
		Name:              p.Name,
		Brand:             p.Brand,
		Size:              p.Size,
		RentalPerDayPaise: p.RentalPerDay,
		DepositPaise:      p.Deposit,
		ImageURLs:         p.ImageURLs,
	}
}

func (p *ProductBuilder) BuildViewQuery() *queries.ProductView {
	return &queries.ProductView{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		OwnerName:    p.OwnerName,
		CategoryID:   p.CategoryID,
		CategorySlug: p.CategorySlug,
		Name:         p.Name,
		Brand:        p.Brand,
		Size:         p.Size,
		RentalPerDay: p.RentalPerDay,
		Deposit:      p.Deposit,
		ImageURLs:    p.ImageURLs,
		Status:       p.Status,
		IsAvailable:  p.IsAvailable,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.CreatedAt,
	}
}

func (p *ProductBuilder) BuildListItem() *queries.ProductListItem {
	imageURL := ""
	if len(p.ImageURLs) > 0 {
		imageURL = p.ImageURLs[0]
	}
	return &queries.ProductListItem{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Size:         p.Size,
		RentalPerDay: p.RentalPerDay,
		Deposit:      p.Deposit,
		ImageURL:     imageURL,
		CategorySlug: p.CategorySlug,
		Status:       p.Status,
		IsAvailable:  p.IsAvailable,
		CreatedAt:    p.CreatedAt,
	}
}
