package shared

import (
	"time"

	"github.com/google/uuid"
)

type ProductSnapshot struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	CategoryID     uuid.UUID
	Name           string
	Size           string
	RentalPerDay   int64
	Deposit        int64
	AvailableFrom  *time.Time
	AvailableUntil *time.Time
	Status         string
	IsAvailable    bool
}

type OrderSnapshot struct {
	ID        uuid.UUID
	RenterID  uuid.UUID
	LenderID  uuid.UUID
	ProductID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Status    string
}

type AddressSnapshot struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Line1   string
	Line2   string
	City    string
	Pincode string
}

type CategorySnapshot struct {
	ID   uuid.UUID
	Name string
	Slug string
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
	Phone        *string
	Role         string
}

type CreateAddressParams struct {
	UserID    uuid.UUID
	Label     string
	Line1     string
	Line2     string
	City      string
	State     string
	Pincode   string
	IsDefault bool
}
