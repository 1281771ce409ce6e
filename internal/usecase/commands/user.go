package commands

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/domain/user"
	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
	"rentimade/internal/usecase/shared"
)

type UserCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error
	UpsertBankDetails(ctx context.Context, userID uuid.UUID, req reqdto.UpsertBankDetailsRequest) error
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
	SetRole(ctx context.Context, userID uuid.UUID, role string) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (c *userCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error {
	var phone *string
	if req.Phone != nil {
		p, err := user.NewPhone(*req.Phone)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		v := p.Value()
		phone = &v
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateProfile(ctx, tx.DB(), userID, req.Name, phone)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *userCommandsImpl) UpsertBankDetails(ctx context.Context, userID uuid.UUID, req reqdto.UpsertBankDetailsRequest) error {
	details, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.BankDetails().Upsert(ctx, tx.DB(), userID,
			details.AccountHolder(), details.AccountNumber().Value(), details.IFSC().Value())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *userCommandsImpl) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetActive(ctx, tx.DB(), userID, active)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *userCommandsImpl) SetRole(ctx context.Context, userID uuid.UUID, role string) error {
	parsed, err := user.NewRole(role)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetRole(ctx, tx.DB(), userID, parsed.String())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
