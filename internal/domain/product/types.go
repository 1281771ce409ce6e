package product

import "errors"

var (
	ErrEmptyName     = errors.New("product name cannot be empty")
	ErrNameTooLong   = errors.New("product name exceeds maximum length")
	ErrInvalidSize   = errors.New("invalid size")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrInvalidStatus = errors.New("invalid product status")
	ErrNotPending    = errors.New("product is not pending moderation")
	ErrEmptyReason   = errors.New("rejection reason cannot be empty")
	ErrTooManyImages = errors.New("too many product images")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
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
