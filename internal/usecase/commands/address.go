package commands

import (
	"context"

	"github.com/google/uuid"

	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
	"rentimade/internal/usecase/shared"
)

type AddressCommands interface {
	Create(ctx context.Context, userID uuid.UUID, req reqdto.CreateAddressRequest) (uuid.UUID, error)
	Delete(ctx context.Context, addressID, userID uuid.UUID) error
	SetDefault(ctx context.Context, addressID, userID uuid.UUID) error
}

type addressCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAddressCommands(uow shared.UnitOfWork) AddressCommands {
	return &addressCommandsImpl{uow: uow}
}

func (c *addressCommandsImpl) Create(ctx context.Context, userID uuid.UUID, req reqdto.CreateAddressRequest) (uuid.UUID, error) {
	address, err := req.ToDomain(userID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var addressID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Addresses().Create(ctx, tx.DB(), shared.CreateAddressParams{
			UserID:    address.UserID(),
			Label:     address.Label(),
			Line1:     address.Line1(),
			Line2:     address.Line2(),
			City:      address.City(),
			State:     address.State(),
			Pincode:   address.Pincode(),
			IsDefault: address.IsDefault(),
		})
		if createErr != nil {
			return createErr
		}
		addressID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return addressID, nil
}

func (c *addressCommandsImpl) Delete(ctx context.Context, addressID, userID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Addresses().Delete(ctx, tx.DB(), addressID, userID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAddressNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *addressCommandsImpl) SetDefault(ctx context.Context, addressID, userID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Addresses().SetDefault(ctx, tx.DB(), addressID, userID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAddressNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
