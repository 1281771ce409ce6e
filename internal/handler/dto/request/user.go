package request

import (
	"github.com/google/uuid"

	"rentimade/internal/domain/user"
)

type UpdateProfileRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone *string `json:"phone,omitempty"`
}

type CreateAddressRequest struct {
	Label     string `json:"label"`
	Line1     string `json:"line1" binding:"required"`
	Line2     string `json:"line2"`
	Pincode   string `json:"pincode" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

func (r *CreateAddressRequest) ToDomain(userID uuid.UUID) (*user.Address, error) {
	return user.NewAddress(userID, r.Label, r.Line1, r.Line2, r.Pincode, r.IsDefault)
}

type UpsertBankDetailsRequest struct {
	AccountHolder string `json:"account_holder" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	IFSC          string `json:"ifsc" binding:"required"`
}

func (r *UpsertBankDetailsRequest) ToDomain() (user.BankDetails, error) {
	account, err := user.NewAccountNumber(r.AccountNumber)
	if err != nil {
		return user.BankDetails{}, err
	}
	ifsc, err := user.NewIFSC(r.IFSC)
	if err != nil {
		return user.BankDetails{}, err
	}
	return user.NewBankDetails(r.AccountHolder, account, ifsc), nil
}

type UpdateUserStatusRequest struct {
	IsActive bool `json:"is_active"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=renter lender admin"`
}
