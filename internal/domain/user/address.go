package user

import (
	"errors"
	"strings"

	"rentimade/internal/domain/delivery"

	"github.com/google/uuid"
)

var (
	ErrUnserviceablePincode = errors.New("pincode outside serviceable delivery areas")
	ErrEmptyAddressLine     = errors.New("address line cannot be empty")
)

// Address is a delivery address. The city is not taken from input; it
// is resolved from the pincode so the two can never disagree.
type Address struct {
	id        uuid.UUID
	userID    uuid.UUID
	label     string
	line1     string
	line2     string
	city      string
	state     string
	pincode   string
	isDefault bool
}

func NewAddress(userID uuid.UUID, label, line1, line2, pincode string, isDefault bool) (*Address, error) {
	line1 = strings.TrimSpace(line1)
	if line1 == "" {
		return nil, ErrEmptyAddressLine
	}

	pincode = strings.TrimSpace(pincode)
	city, ok := delivery.CityFromPincode(pincode)
	if !ok {
		return nil, ErrUnserviceablePincode
	}

	return &Address{
		id:        uuid.New(),
		userID:    userID,
		label:     strings.TrimSpace(label),
		line1:     line1,
		line2:     strings.TrimSpace(line2),
		city:      city,
		state:     "Madhya Pradesh",
		pincode:   pincode,
		isDefault: isDefault,
	}, nil
}

func ReconstructAddress(id, userID uuid.UUID, label, line1, line2, city, state, pincode string, isDefault bool) *Address {
	return &Address{
		id:        id,
		userID:    userID,
		label:     label,
		line1:     line1,
		line2:     line2,
		city:      city,
		state:     state,
		pincode:   pincode,
		isDefault: isDefault,
	}
}

func (a *Address) ID() uuid.UUID     { return a.id }
func (a *Address) UserID() uuid.UUID { return a.userID }
func (a *Address) Label() string     { return a.label }
func (a *Address) Line1() string     { return a.line1 }
func (a *Address) Line2() string     { return a.line2 }
func (a *Address) City() string      { return a.city }
func (a *Address) State() string     { return a.state }
func (a *Address) Pincode() string   { return a.pincode }
func (a *Address) IsDefault() bool   { return a.isDefault }
