package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"rentimade/internal/domain/availability"
	"rentimade/internal/domain/delivery"
	"rentimade/internal/domain/order"
	"rentimade/internal/domain/product"
	reqdto "rentimade/internal/handler/dto/request"
	"rentimade/internal/infra"
	"rentimade/internal/pkg/clock"
	"rentimade/internal/pkg/errs"
	"rentimade/internal/usecase/shared"
)

var (
	ErrOrderNotFound        = errs.New("order not found")
	ErrOrderAccess          = errs.New("order access denied")
	ErrProductNotRentable   = errs.New("product is not rentable")
	ErrDatesUnavailable     = errs.New("requested dates are not available")
	ErrAddressNotFound      = errs.New("address not found")
	ErrAddressUnserviceable = errs.New("address not serviceable")
	ErrCannotRentOwnItem    = errs.New("cannot rent own listing")
	ErrIllegalTransition    = errs.New("illegal order status transition")
	ErrNotCancellable       = errs.New("order can no longer be cancelled")
)

type OrderCommands interface {
	CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest, renterID uuid.UUID) (uuid.UUID, error)
	CancelByRenter(ctx context.Context, orderID, renterID uuid.UUID) error
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, clock: clk}
}

func (c *orderCommandsImpl) CreateOrder(ctx context.Context, req reqdto.CreateOrderRequest, renterID uuid.UUID) (uuid.UUID, error) {
	period, err := req.ParsePeriod()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	address, err := c.validateAddress(ctx, req.AddressID, renterID)
	if err != nil {
		return uuid.Nil, err
	}

	var orderID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Serialize concurrent bookings for the same listing.
		if lockErr := tx.Products().LockForBooking(ctx, tx.DB(), req.ProductID); lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return ErrProductNotFound
			}
			return lockErr
		}

		snapshot, readErr := tx.Reads().ProductByID(ctx, req.ProductID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrProductNotFound
			}
			return readErr
		}
		if snapshot.OwnerID == renterID {
			return ErrCannotRentOwnItem
		}
		if snapshot.Status != product.StatusApproved.String() || !snapshot.IsAvailable {
			return ErrProductNotRentable
		}

		listing, buildErr := snapshotToProduct(snapshot)
		if buildErr != nil {
			return errs.Mark(buildErr, ErrDomainValidation)
		}

		booked, readErr := tx.Reads().BookedDates(ctx, req.ProductID)
		if readErr != nil {
			return readErr
		}

		// The privilege bypass applies to the availability view only;
		// order creation always runs the full non-privileged rules.
		resolver := availability.NewResolver(listing.Window(), booked, false, c.clock.Now())
		if _, disabled := resolver.FirstDisabled(period.Start(), period.End()); disabled {
			return ErrDatesUnavailable
		}

		newOrder, domainErr := order.NewOrder(renterID, listing, period, order.AddressSnapshot{
			Line1:   address.Line1,
			Line2:   address.Line2,
			City:    address.City,
			Pincode: address.Pincode,
		})
		if domainErr != nil {
			return errs.Mark(domainErr, ErrDomainValidation)
		}

		id, createErr := tx.Orders().Create(ctx, tx.DB(), newOrder)
		if createErr != nil {
			return createErr
		}
		orderID = id
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound),
			errors.Is(err, ErrProductNotRentable),
			errors.Is(err, ErrDatesUnavailable),
			errors.Is(err, ErrCannotRentOwnItem),
			errors.Is(err, ErrDomainValidation):
			return uuid.Nil, err
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return orderID, nil
}

func (c *orderCommandsImpl) CancelByRenter(ctx context.Context, orderID, renterID uuid.UUID) error {
	snapshot, err := c.uow.CommandReads().OrderByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snapshot.RenterID != renterID {
		return ErrOrderAccess
	}
	if snapshot.Status != order.StatusPending.String() {
		return ErrNotCancellable
	}

	now := c.clock.Now()
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, order.StatusCancelled, &now)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *orderCommandsImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	next, err := order.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	snapshot, err := c.uow.CommandReads().OrderByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	current, err := order.NewStatus(snapshot.Status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	if !current.CanTransitionTo(next) {
		return ErrIllegalTransition
	}

	var cancelledAt *time.Time
	if next == order.StatusCancelled {
		now := c.clock.Now()
		cancelledAt = &now
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Pending orders do not block dates, so two overlapping requests
		// can coexist. Confirming turns a request into a booking; re-verify
		// the period under the product lock before committing.
		if current == order.StatusPending && next == order.StatusConfirmed {
			if lockErr := tx.Products().LockForBooking(ctx, tx.DB(), snapshot.ProductID); lockErr != nil {
				return lockErr
			}
			booked, readErr := tx.Reads().BookedDates(ctx, snapshot.ProductID)
			if readErr != nil {
				return readErr
			}
			if availability.Conflicts(booked, snapshot.StartDate, snapshot.EndDate) {
				return ErrDatesUnavailable
			}
		}
		return tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, next, cancelledAt)
	})
	if err != nil {
		if errors.Is(err, ErrDatesUnavailable) {
			return err
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *orderCommandsImpl) validateAddress(ctx context.Context, addressID, renterID uuid.UUID) (*shared.AddressSnapshot, error) {
	address, err := c.uow.CommandReads().AddressByID(ctx, addressID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if address.UserID != renterID {
		return nil, ErrAddressNotFound
	}
	if !delivery.IsValidPincode(address.Pincode) {
		return nil, ErrAddressUnserviceable
	}
	return address, nil
}

func snapshotToProduct(s *shared.ProductSnapshot) (*product.Product, error) {
	name, err := product.NewName(s.Name)
	if err != nil {
		return nil, err
	}
	rate, err := product.NewMoney(s.RentalPerDay)
	if err != nil {
		return nil, err
	}
	deposit, err := product.NewMoney(s.Deposit)
	if err != nil {
		return nil, err
	}
	window, err := availability.NewWindow(s.AvailableFrom, s.AvailableUntil)
	if err != nil {
		return nil, err
	}
	status, err := product.NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	size, err := product.NewSize(s.Size)
	if err != nil {
		return nil, err
	}
	return product.ReconstructProduct(
		s.ID, s.OwnerID, s.CategoryID,
		name, "", "",
		size, rate, deposit,
		nil, window, status, s.IsAvailable, nil,
		time.Time{}, time.Time{},
	), nil
}
