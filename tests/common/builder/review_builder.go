//go:build unit || e2e

package builder

import (
	"time"

	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID      uuid.UUID
	UserName    string
	ProductID   uuid.UUID
	ProductName string
	OrderID     uuid.UUID
	Rating      int
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		UserID:      uuid.New(),
		UserName:    "Test Reviewer",
		ProductID:   uuid.New(),
		ProductName: "Banarasi Silk Lehenga",
		OrderID:     uuid.New(),
		Rating:      5,
		Comment:     "Fit perfectly, great condition!",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ProductID: r.ProductID,
		OrderID:   r.OrderID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	return reqdto.UpdateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:          uuid.New(),
		UserID:      r.UserID,
		UserName:    r.UserName,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		OrderID:     r.OrderID,
		Rating:      int32(r.Rating),
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:        uuid.New(),
		UserName:  r.UserName,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
