package order

import (
	"time"

	"rentimade/internal/domain/delivery"
	"rentimade/internal/domain/product"

	"github.com/google/uuid"
)

type Order struct {
	id        uuid.UUID
	renterID  uuid.UUID
	productID uuid.UUID
	ownerID   uuid.UUID
	period    RentalPeriod
	address   AddressSnapshot
	rent      product.Money
	deposit   product.Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewOrder prices the booking from the listing's per-day rate and
// re-checks the destination pincode; an address that went stale since
// it was saved must not slip through checkout.
func NewOrder(
	renterID uuid.UUID,
	listing *product.Product,
	period RentalPeriod,
	address AddressSnapshot,
) (*Order, error) {
	if !delivery.IsValidPincode(address.Pincode) {
		return nil, ErrUnserviceableOrigin
	}

	return &Order{
		id:        uuid.New(),
		renterID:  renterID,
		productID: listing.ID(),
		ownerID:   listing.OwnerID(),
		period:    period,
		address:   address,
		rent:      listing.RentalPerDay().MultiplyDays(period.Days()),
		deposit:   listing.Deposit(),
		status:    StatusPending,
	}, nil
}

func ReconstructOrder(
	id, renterID, productID, ownerID uuid.UUID,
	period RentalPeriod,
	address AddressSnapshot,
	rent, deposit product.Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:        id,
		renterID:  renterID,
		productID: productID,
		ownerID:   ownerID,
		period:    period,
		address:   address,
		rent:      rent,
		deposit:   deposit,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Transition moves the order along its lifecycle. Callers decide who
// may request which transition; the entity only guards legality.
func (o *Order) Transition(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	o.status = next
	return nil
}

// CancelByRenter lets the renter back out while the order is still
// pending. Confirmed orders need admin intervention.
func (o *Order) CancelByRenter(renterID uuid.UUID) error {
	if o.renterID != renterID {
		return ErrNotOwnedByRenter
	}
	if o.status != StatusPending {
		return ErrNotCancellable
	}
	o.status = StatusCancelled
	return nil
}

// Total is what the renter pays upfront: rent for the period plus the
// refundable deposit.
func (o *Order) Total() product.Money {
	return o.rent.Add(o.deposit)
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) RenterID() uuid.UUID      { return o.renterID }
func (o *Order) ProductID() uuid.UUID     { return o.productID }
func (o *Order) OwnerID() uuid.UUID       { return o.ownerID }
func (o *Order) Period() RentalPeriod     { return o.period }
func (o *Order) Address() AddressSnapshot { return o.address }
func (o *Order) Rent() product.Money      { return o.rent }
func (o *Order) Deposit() product.Money   { return o.deposit }
func (o *Order) Status() Status           { return o.status }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
