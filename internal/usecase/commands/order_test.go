//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"rentimade/internal/domain/order"
	"rentimade/internal/infra/db"
	"rentimade/internal/pkg/clock"
	"rentimade/internal/usecase/commands"
	"rentimade/internal/usecase/shared"
)

// Partial stubs over the unit-of-work surface. Embedding the interface
// keeps the stubs small; calling anything not overridden panics.

type stubUow struct {
	shared.UnitOfWork
	tx    *stubTx
	reads *stubReads
}

func (u *stubUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *stubUow) CommandReads() shared.CommandReads { return u.reads }

type stubTx struct {
	shared.Tx
	products *stubProducts
	orders   *stubOrders
	reads    *stubReads
}

func (s *stubTx) Products() shared.ProductRepository { return s.products }
func (s *stubTx) Orders() shared.OrderRepository     { return s.orders }
func (s *stubTx) Reads() shared.CommandReads         { return s.reads }
func (s *stubTx) DB() db.DBTX                        { return nil }

type stubProducts struct {
	shared.ProductRepository
	lockCalls int
}

func (s *stubProducts) LockForBooking(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	s.lockCalls++
	return nil
}

type stubOrders struct {
	shared.OrderRepository
	updatedTo []order.Status
}

func (s *stubOrders) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status, cancelledAt *time.Time) error {
	s.updatedTo = append(s.updatedTo, status)
	return nil
}

type stubReads struct {
	shared.CommandReads
	order           *shared.OrderSnapshot
	booked          []time.Time
	bookedDateCalls int
}

func (s *stubReads) OrderByID(ctx context.Context, id uuid.UUID) (*shared.OrderSnapshot, error) {
	return s.order, nil
}

func (s *stubReads) BookedDates(ctx context.Context, productID uuid.UUID) ([]time.Time, error) {
	s.bookedDateCalls++
	return s.booked, nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newOrderCommandFixture(snapshot *shared.OrderSnapshot, booked []time.Time) (commands.OrderCommands, *stubUow) {
	reads := &stubReads{order: snapshot, booked: booked}
	uow := &stubUow{
		tx: &stubTx{
			products: &stubProducts{},
			orders:   &stubOrders{},
			reads:    reads,
		},
		reads: reads,
	}
	clk := clock.NewMockClock(date("2025-06-01"))
	return commands.NewOrderCommands(uow, clk), uow
}

func pendingSnapshot() *shared.OrderSnapshot {
	return &shared.OrderSnapshot{
		ID:        uuid.New(),
		RenterID:  uuid.New(),
		LenderID:  uuid.New(),
		ProductID: uuid.New(),
		StartDate: date("2025-06-12"),
		EndDate:   date("2025-06-16"),
		Status:    order.StatusPending.String(),
	}
}

func TestOrderCommands_UpdateStatus_ConfirmRecheck(t *testing.T) {
	t.Parallel()

	t.Run("rejects confirming over freshly booked dates", func(t *testing.T) {
		t.Parallel()
		snapshot := pendingSnapshot()
		svc, uow := newOrderCommandFixture(snapshot, []time.Time{
			date("2025-06-14"),
			date("2025-06-15"),
		})

		err := svc.UpdateStatus(context.Background(), snapshot.ID, "confirmed")

		require.ErrorIs(t, err, commands.ErrDatesUnavailable)
		require.Empty(t, uow.tx.orders.updatedTo)
	})

	t.Run("confirms when the period is still free", func(t *testing.T) {
		t.Parallel()
		snapshot := pendingSnapshot()
		svc, uow := newOrderCommandFixture(snapshot, []time.Time{
			date("2025-06-20"),
		})

		err := svc.UpdateStatus(context.Background(), snapshot.ID, "confirmed")

		require.NoError(t, err)
		require.Equal(t, []order.Status{order.StatusConfirmed}, uow.tx.orders.updatedTo)
		require.Equal(t, 1, uow.tx.products.lockCalls)
		require.Equal(t, 1, uow.reads.bookedDateCalls)
	})

	t.Run("skips the recheck for non-confirming transitions", func(t *testing.T) {
		t.Parallel()
		snapshot := pendingSnapshot()
		snapshot.Status = order.StatusConfirmed.String()
		svc, uow := newOrderCommandFixture(snapshot, []time.Time{
			date("2025-06-14"),
		})

		err := svc.UpdateStatus(context.Background(), snapshot.ID, "delivered")

		require.NoError(t, err)
		require.Equal(t, []order.Status{order.StatusDelivered}, uow.tx.orders.updatedTo)
		require.Zero(t, uow.tx.products.lockCalls)
		require.Zero(t, uow.reads.bookedDateCalls)
	})
}
