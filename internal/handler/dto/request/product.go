package request

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"rentimade/internal/domain/availability"
	"rentimade/internal/domain/product"
	"rentimade/internal/pkg/patch"
)

type CreateProductRequest struct {
	CategoryID        uuid.UUID `json:"category_id" binding:"required"`
	Name              string    `json:"name" binding:"required"`
	Description       string    `json:"description"`
	Brand             string    `json:"brand"`
	Size              string    `json:"size" binding:"required"`
	RentalPerDayPaise int64     `json:"rental_per_day_paise" binding:"required,gt=0"`
	DepositPaise      int64     `json:"deposit_paise" binding:"gte=0"`
	ImageURLs         []string  `json:"image_urls"`
	AvailableFrom     *string   `json:"available_from,omitempty"`
	AvailableUntil    *string   `json:"available_until,omitempty"`
}

func (r *CreateProductRequest) ToDomain(ownerID uuid.UUID) (*product.Product, error) {
	name, err := product.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	size, err := product.NewSize(r.Size)
	if err != nil {
		return nil, err
	}
	rate, err := product.NewMoney(r.RentalPerDayPaise)
	if err != nil {
		return nil, err
	}
	deposit, err := product.NewMoney(r.DepositPaise)
	if err != nil {
		return nil, err
	}
	window, err := parseWindow(r.AvailableFrom, r.AvailableUntil)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(ownerID, r.CategoryID, name, r.Description, r.Brand, size, rate, deposit, r.ImageURLs, window)
}

func parseWindow(from, until *string) (availability.Window, error) {
	var fromTime, untilTime *time.Time
	if from != nil && strings.TrimSpace(*from) != "" {
		t, err := time.Parse(time.DateOnly, strings.TrimSpace(*from))
		if err != nil {
			return availability.Window{}, err
		}
		fromTime = &t
	}
	if until != nil && strings.TrimSpace(*until) != "" {
		t, err := time.Parse(time.DateOnly, strings.TrimSpace(*until))
		if err != nil {
			return availability.Window{}, err
		}
		untilTime = &t
	}
	return availability.NewWindow(fromTime, untilTime)
}

type UpdateProductAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

const (
	ModerationActionApprove = "approve"
	ModerationActionReject  = "reject"
)

type ModerateProductRequest struct {
	Action string  `json:"action" binding:"required,oneof=approve reject"`
	Reason *string `json:"reason,omitempty"`
}

func (r *ModerateProductRequest) TrimmedReason() string {
	return strings.TrimSpace(patch.Coalesce(r.Reason, ""))
}
