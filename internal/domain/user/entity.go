package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	name         string
	phone        *Phone
	role         Role
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash, name string, phone *Phone, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		role:         role,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash, name string,
	phone *Phone,
	role Role,
	isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		phone:        phone,
		role:         role,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Name() string          { return u.name }
func (u *User) Phone() *Phone         { return u.phone }
func (u *User) Role() Role            { return u.role }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// BankDetails is the payout destination a lender registered.
type BankDetails struct {
	accountHolder string
	accountNumber AccountNumber
	ifsc          IFSC
}

func NewBankDetails(accountHolder string, accountNumber AccountNumber, ifsc IFSC) BankDetails {
	return BankDetails{
		accountHolder: accountHolder,
		accountNumber: accountNumber,
		ifsc:          ifsc,
	}
}

func (b BankDetails) AccountHolder() string        { return b.accountHolder }
func (b BankDetails) AccountNumber() AccountNumber { return b.accountNumber }
func (b BankDetails) IFSC() IFSC                   { return b.ifsc }
