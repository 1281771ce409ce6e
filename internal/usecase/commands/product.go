package commands

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/domain/product"
	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
	"rentimade/internal/usecase/shared"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrCategoryNotFound        = errs.New("category not found")
	ErrNotProductOwner         = errs.New("not the product owner")
	ErrProductNotPending       = errs.New("product is not pending moderation")
	ErrRejectionReasonRequired = errs.New("rejection reason required")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ProductCommands interface {
	CreateListing(ctx context.Context, req reqdto.CreateProductRequest, ownerID uuid.UUID) (uuid.UUID, error)
	SetAvailability(ctx context.Context, productID, ownerID uuid.UUID, available bool) error
	Moderate(ctx context.Context, productID uuid.UUID, req reqdto.ModerateProductRequest) error
}

type productCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProductCommands(uow shared.UnitOfWork) ProductCommands {
	return &productCommandsImpl{uow: uow}
}

func (c *productCommandsImpl) CreateListing(ctx context.Context, req reqdto.CreateProductRequest, ownerID uuid.UUID) (uuid.UUID, error) {
	if _, err := c.uow.CommandReads().CategoryByID(ctx, req.CategoryID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrCategoryNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	listing, err := req.ToDomain(ownerID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var productID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Products().Create(ctx, tx.DB(), listing)
		if createErr != nil {
			return createErr
		}
		productID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrCategoryNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return productID, nil
}

func (c *productCommandsImpl) SetAvailability(ctx context.Context, productID, ownerID uuid.UUID, available bool) error {
	snapshot, err := c.uow.CommandReads().ProductByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snapshot.OwnerID != ownerID {
		return ErrNotProductOwner
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().SetAvailable(ctx, tx.DB(), productID, available)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *productCommandsImpl) Moderate(ctx context.Context, productID uuid.UUID, req reqdto.ModerateProductRequest) error {
	snapshot, err := c.uow.CommandReads().ProductByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snapshot.Status != product.StatusPending.String() {
		return ErrProductNotPending
	}

	var status product.Status
	var reason *string
	switch req.Action {
	case reqdto.ModerationActionApprove:
		status = product.StatusApproved
	case reqdto.ModerationActionReject:
		trimmed := req.TrimmedReason()
		if trimmed == "" {
			return ErrRejectionReasonRequired
		}
		status = product.StatusRejected
		reason = &trimmed
	default:
		return ErrDomainValidation
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().UpdateModeration(ctx, tx.DB(), productID, status, reason)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
