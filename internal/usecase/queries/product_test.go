//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rentimade/internal/infra"
	"rentimade/internal/pkg/clock"
	"rentimade/internal/usecase/queries"
	readstoremock "rentimade/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProductQueries(t *testing.T) (*readstoremock.MockProductReadStore, *clock.MockClock, queries.ProductQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := readstoremock.NewMockProductReadStore(ctrl)
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))
	return store, clk, queries.NewProductQueries(store, clk)
}

func pendingProduct(ownerID uuid.UUID) *queries.ProductView {
	return &queries.ProductView{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    "Banarasi Silk Lehenga",
		Status:  "pending",
	}
}

func TestProductQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("approved product is visible to anonymous viewers", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		pv := pendingProduct(ownerID)
		pv.Status = "approved"
		store.EXPECT().FindByID(ctx, pv.ID).Return(pv, nil)

		got, err := q.GetByID(ctx, pv.ID, nil, "")
		require.NoError(t, err)
		assert.Equal(t, pv.ID, got.ID)
	})

	t.Run("pending product looks missing to strangers", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		pv := pendingProduct(ownerID)
		store.EXPECT().FindByID(ctx, pv.ID).Return(pv, nil)

		stranger := uuid.New()
		_, err := q.GetByID(ctx, pv.ID, &stranger, "renter")
		assert.ErrorIs(t, err, queries.ErrProductNotFound)
	})

	t.Run("pending product is visible to its owner", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		pv := pendingProduct(ownerID)
		store.EXPECT().FindByID(ctx, pv.ID).Return(pv, nil)

		got, err := q.GetByID(ctx, pv.ID, &ownerID, "lender")
		require.NoError(t, err)
		assert.Equal(t, "pending", got.Status)
	})

	t.Run("pending product is visible to admins", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		pv := pendingProduct(ownerID)
		store.EXPECT().FindByID(ctx, pv.ID).Return(pv, nil)

		adminID := uuid.New()
		got, err := q.GetByID(ctx, pv.ID, &adminID, "admin")
		require.NoError(t, err)
		assert.Equal(t, pv.ID, got.ID)
	})

	t.Run("store not-found maps to ErrProductNotFound", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, id, nil, "")
		assert.ErrorIs(t, err, queries.ErrProductNotFound)
	})
}

func TestProductQueries_ListApproved(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches limit+1 rows and emits a next cursor on overflow", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		rows := make([]*queries.ProductListItem, 3)
		for i := range rows {
			rows[i] = &queries.ProductListItem{
				ID:        uuid.New(),
				Status:    "approved",
				CreatedAt: time.Date(2026, 5, 1+i, 0, 0, 0, 0, time.UTC),
			}
		}
		store.EXPECT().FindApprovedFirstPage(ctx, queries.ProductFilters{}, int32(3)).Return(rows, nil)

		got, next, err := q.ListApproved(ctx, queries.ProductFilters{}, nil, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)

		gotTime, gotID, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, gotID)
		assert.True(t, gotTime.Equal(rows[1].CreatedAt))
	})

	t.Run("no next cursor on the last page", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		rows := []*queries.ProductListItem{{ID: uuid.New()}}
		store.EXPECT().FindApprovedFirstPage(ctx, queries.ProductFilters{}, int32(3)).Return(rows, nil)

		got, next, err := q.ListApproved(ctx, queries.ProductFilters{}, nil, 2)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("resumes from a cursor via the keyset path", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		lastTime := time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastTime, lastID)}

		store.EXPECT().FindApprovedKeyset(ctx, queries.ProductFilters{}, gomock.Any(), lastID, int32(21)).
			Return(nil, nil)

		_, next, err := q.ListApproved(ctx, queries.ProductFilters{}, cursor, 0)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor maps to ErrInvalidCursor", func(t *testing.T) {
		_, _, q := newProductQueries(t)
		_, _, err := q.ListApproved(ctx, queries.ProductFilters{}, &queries.Cursor{After: "garbage"}, 10)
		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestProductQueries_GetAvailability(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	approved := func() *queries.ProductView {
		from := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
		until := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
		pv := pendingProduct(ownerID)
		pv.Status = "approved"
		pv.AvailableFrom = &from
		pv.AvailableUntil = &until
		return pv
	}

	t.Run("public viewer gets the buffered window and booked dates", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		pv := approved()
		booked := []time.Time{time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)}
		store.EXPECT().FindByID(ctx, pv.ID).Return(pv, nil)
		store.EXPECT().FindBookedDates(ctx, pv.ID).Return(booked, nil)

		view, err := q.GetAvailability(ctx, pv.ID, nil, "")
		require.NoError(t, err)

		assert.False(t, view.Privileged)
		assert.Equal(t, "2026-06-09", view.SelectableMin)
		require.NotNil(t, view.SelectableMax)
		assert.Equal(t, "2026-06-21", *view.SelectableMax)
		assert.Equal(t, []string{"2026-06-12"}, view.BookedDates)
	})

	t.Run("owner sees an unbounded calendar starting today", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		pv := approved()
		store.EXPECT().FindByID(ctx, pv.ID).Return(pv, nil)
		store.EXPECT().FindBookedDates(ctx, pv.ID).Return(nil, nil)

		view, err := q.GetAvailability(ctx, pv.ID, &ownerID, "lender")
		require.NoError(t, err)

		assert.True(t, view.Privileged)
		assert.Equal(t, "2026-06-01", view.SelectableMin)
		assert.Nil(t, view.SelectableMax)
	})

	t.Run("pending product availability is hidden from strangers", func(t *testing.T) {
		store, _, q := newProductQueries(t)
		pv := pendingProduct(ownerID)
		store.EXPECT().FindByID(ctx, pv.ID).Return(pv, nil)

		stranger := uuid.New()
		_, err := q.GetAvailability(ctx, pv.ID, &stranger, "renter")
		assert.ErrorIs(t, err, queries.ErrProductNotFound)
	})
}
