package order

import "errors"

var (
	ErrInvalidPeriod       = errors.New("rental start date must not be after end date")
	ErrPeriodTooLong       = errors.New("rental period exceeds maximum length")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrIllegalTransition   = errors.New("illegal order status transition")
	ErrNotCancellable      = errors.New("order can no longer be cancelled")
	ErrNotOwnedByRenter    = errors.New("order does not belong to renter")
	ErrUnserviceableOrigin = errors.New("delivery address not serviceable")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusReturned  Status = "returned"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDelivered, StatusReturned, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Blocking statuses commit the product's dates: a pending order not yet
// confirmed does not block other renters.
func (s Status) BlocksDates() bool {
	return s == StatusConfirmed || s == StatusDelivered
}

var legalTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusDelivered, StatusCancelled},
	StatusDelivered: {StatusReturned},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
