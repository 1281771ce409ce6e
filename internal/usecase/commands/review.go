package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"rentimade/internal/domain/order"
	"rentimade/internal/domain/review"
	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/infra"
	"rentimade/internal/pkg/clock"
	"rentimade/internal/pkg/errs"
	"rentimade/internal/usecase/shared"
)

var (
	ErrReviewNotFound      = errs.New("review not found")
	ErrReviewAccess        = errs.New("review access denied")
	ErrOrderNotEligible    = errs.New("order is not eligible for review")
	ErrReviewAlreadyExists = errs.New("review already exists for this order")
)

type ReviewCommands interface {
	Create(ctx context.Context, req reqdto.CreateReviewRequest, userID uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, reviewID uuid.UUID, req reqdto.UpdateReviewRequest, userID uuid.UUID) error
	Delete(ctx context.Context, reviewID, actorID uuid.UUID, actorRole string) error
}

// ReviewOwnershipReader resolves who wrote a review and which product it
// belongs to, for authorization and stats recalculation on mutation.
type ReviewOwnershipReader interface {
	GetReviewOwnership(ctx context.Context, reviewID uuid.UUID) (userID, productID uuid.UUID, err error)
}

type reviewCommandsImpl struct {
	uow       shared.UnitOfWork
	ownership ReviewOwnershipReader
	clock     clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, ownership ReviewOwnershipReader, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, ownership: ownership, clock: clk}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, req reqdto.CreateReviewRequest, userID uuid.UUID) (uuid.UUID, error) {
	snapshot, err := c.uow.CommandReads().OrderByID(ctx, req.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrOrderNotEligible
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snapshot.RenterID != userID || snapshot.ProductID != req.ProductID {
		return uuid.Nil, ErrOrderNotEligible
	}
	if snapshot.Status != order.StatusReturned.String() {
		return uuid.Nil, ErrOrderNotEligible
	}

	exists, err := c.uow.CommandReads().ReviewExistsForOrder(ctx, req.OrderID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return uuid.Nil, ErrReviewAlreadyExists
	}

	rev, err := review.NewReview(uuid.Nil, userID, req.ProductID, req.OrderID, req.Rating, req.Comment, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var reviewID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if createErr != nil {
			return createErr
		}
		reviewID = id
		return tx.RatingStats().RecalcProductRatingStats(ctx, tx.DB(), req.ProductID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrReviewAlreadyExists
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reviewID, nil
}

func (c *reviewCommandsImpl) Update(ctx context.Context, reviewID uuid.UUID, req reqdto.UpdateReviewRequest, userID uuid.UUID) error {
	ownerID, productID, err := c.resolveOwnership(ctx, reviewID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return ErrReviewAccess
	}

	rev, err := review.NewReview(reviewID, userID, productID, uuid.Nil, req.Rating, req.Comment, c.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Reviews().Update(ctx, tx.DB(), reviewID, rev); updateErr != nil {
			return updateErr
		}
		return tx.RatingStats().RecalcProductRatingStats(ctx, tx.DB(), productID)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reviewCommandsImpl) Delete(ctx context.Context, reviewID, actorID uuid.UUID, actorRole string) error {
	ownerID, productID, err := c.resolveOwnership(ctx, reviewID)
	if err != nil {
		return err
	}
	if ownerID != actorID && actorRole != "admin" {
		return ErrReviewAccess
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if deleteErr := tx.Reviews().Delete(ctx, tx.DB(), reviewID); deleteErr != nil {
			return deleteErr
		}
		return tx.RatingStats().RecalcProductRatingStats(ctx, tx.DB(), productID)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reviewCommandsImpl) resolveOwnership(ctx context.Context, reviewID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	ownerID, productID, err := c.ownership.GetReviewOwnership(ctx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || errors.Is(err, ErrReviewNotFound) {
			return uuid.Nil, uuid.Nil, ErrReviewNotFound
		}
		return uuid.Nil, uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return ownerID, productID, nil
}
