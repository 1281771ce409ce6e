package product

import (
	"strings"
	"time"

	"rentimade/internal/domain/availability"

	"github.com/google/uuid"
)

// Product is a lender's listing. New listings enter moderation as
// pending and become publicly visible only once an admin approves them.
type Product struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	categoryID      uuid.UUID
	name            Name
	description     string
	brand           string
	size            Size
	rentalPerDay    Money
	deposit         Money
	imageURLs       []string
	window          availability.Window
	status          Status
	isAvailable     bool
	rejectionReason *string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewProduct(
	ownerID, categoryID uuid.UUID,
	name Name,
	description, brand string,
	size Size,
	rentalPerDay, deposit Money,
	imageURLs []string,
	window availability.Window,
) (*Product, error) {
	if len(imageURLs) > MaxImages {
		return nil, ErrTooManyImages
	}

	return &Product{
		id:           uuid.New(),
		ownerID:      ownerID,
		categoryID:   categoryID,
		name:         name,
		description:  strings.TrimSpace(description),
		brand:        strings.TrimSpace(brand),
		size:         size,
		rentalPerDay: rentalPerDay,
		deposit:      deposit,
		imageURLs:    imageURLs,
		window:       window,
		status:       StatusPending,
		isAvailable:  true,
	}, nil
}

func ReconstructProduct(
	id, ownerID, categoryID uuid.UUID,
	name Name,
	description, brand string,
	size Size,
	rentalPerDay, deposit Money,
	imageURLs []string,
	window availability.Window,
	status Status,
	isAvailable bool,
	rejectionReason *string,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:              id,
		ownerID:         ownerID,
		categoryID:      categoryID,
		name:            name,
		description:     description,
		brand:           brand,
		size:            size,
		rentalPerDay:    rentalPerDay,
		deposit:         deposit,
		imageURLs:       imageURLs,
		window:          window,
		status:          status,
		isAvailable:     isAvailable,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Approve moves a pending listing into the public catalog.
func (p *Product) Approve() error {
	if p.status != StatusPending {
		return ErrNotPending
	}
	p.status = StatusApproved
	p.rejectionReason = nil
	return nil
}

// Reject declines a pending listing with a reason shown to the lender.
func (p *Product) Reject(reason string) error {
	if p.status != StatusPending {
		return ErrNotPending
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrEmptyReason
	}
	p.status = StatusRejected
	p.rejectionReason = &reason
	return nil
}

func (p *Product) SetAvailable(available bool) {
	p.isAvailable = available
}

// IsPubliclyVisible reports whether the listing appears in browse and
// search results.
func (p *Product) IsPubliclyVisible() bool {
	return p.status == StatusApproved && p.isAvailable
}

// IsPrivilegedViewer reports whether the viewer bypasses availability
// bounds: the listing's owner and platform admins manage edge cases
// directly.
func (p *Product) IsPrivilegedViewer(viewerID uuid.UUID, isAdmin bool) bool {
	return isAdmin || viewerID == p.ownerID
}

func (p *Product) ID() uuid.UUID               { return p.id }
func (p *Product) OwnerID() uuid.UUID          { return p.ownerID }
func (p *Product) CategoryID() uuid.UUID       { return p.categoryID }
func (p *Product) Name() Name                  { return p.name }
func (p *Product) Description() string         { return p.description }
func (p *Product) Brand() string               { return p.brand }
func (p *Product) Size() Size                  { return p.size }
func (p *Product) RentalPerDay() Money         { return p.rentalPerDay }
func (p *Product) Deposit() Money              { return p.deposit }
func (p *Product) ImageURLs() []string         { return p.imageURLs }
func (p *Product) Window() availability.Window { return p.window }
func (p *Product) Status() Status              { return p.status }
func (p *Product) IsAvailable() bool           { return p.isAvailable }
func (p *Product) RejectionReason() *string    { return p.rejectionReason }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
