package commands

import (
	"context"

	"github.com/google/uuid"

	"rentimade/internal/infra"
	"rentimade/internal/pkg/errs"
	"rentimade/internal/usecase/shared"
)

type ToggleResult struct {
	ProductID uuid.UUID
	Added     bool
}

type WishlistCommands interface {
	Toggle(ctx context.Context, userID, productID uuid.UUID) (*ToggleResult, error)
}

type wishlistCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewWishlistCommands(uow shared.UnitOfWork) WishlistCommands {
	return &wishlistCommandsImpl{uow: uow}
}

func (c *wishlistCommandsImpl) Toggle(ctx context.Context, userID, productID uuid.UUID) (*ToggleResult, error) {
	if _, err := c.uow.CommandReads().ProductByID(ctx, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var added bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		contains, readErr := tx.Reads().WishlistContains(ctx, userID, productID)
		if readErr != nil {
			return readErr
		}
		if contains {
			added = false
			return tx.Wishlists().Remove(ctx, tx.DB(), userID, productID)
		}
		added = true
		return tx.Wishlists().Add(ctx, tx.DB(), userID, productID)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &ToggleResult{ProductID: productID, Added: added}, nil
}
