//go:build unit

package product_test

import (
	"testing"

	"rentimade/internal/domain/availability"
	"rentimade/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListing(t *testing.T) *product.Product {
	t.Helper()
	name, err := product.NewName("Banarasi Silk Lehenga")
	require.NoError(t, err)
	size, err := product.NewSize("M")
	require.NoError(t, err)
	rent, err := product.NewMoney(250000)
	require.NoError(t, err)
	deposit, err := product.NewMoney(500000)
	require.NoError(t, err)

	p, err := product.NewProduct(
		uuid.New(), uuid.New(),
		name, "Hand-embroidered, worn once", "Sabyasachi",
		size, rent, deposit,
		[]string{"https://cdn.example.com/lehenga-1.jpg"},
		availability.OpenWindow(),
	)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	p := newListing(t)

	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, product.StatusPending, p.Status())
	assert.True(t, p.IsAvailable())
	assert.False(t, p.IsPubliclyVisible(), "pending listings stay out of the catalog")
}

func TestName(t *testing.T) {
	_, err := product.NewName("   ")
	require.ErrorIs(t, err, product.ErrEmptyName)

	long := make([]byte, product.MaxNameLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err = product.NewName(string(long))
	require.ErrorIs(t, err, product.ErrNameTooLong)
}

func TestSize(t *testing.T) {
	for _, valid := range []string{"xs", "S", "m", "L", "xl", "XXL", "free"} {
		_, err := product.NewSize(valid)
		require.NoError(t, err, valid)
	}
	_, err := product.NewSize("42")
	require.ErrorIs(t, err, product.ErrInvalidSize)
}

func TestMoney(t *testing.T) {
	m, err := product.NewMoney(250000)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, m.Rupees())
	assert.Equal(t, int64(750000), m.MultiplyDays(3).Paise())

	_, err = product.NewMoney(-1)
	require.ErrorIs(t, err, product.ErrNegativePrice)
}

func TestModeration(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		p := newListing(t)
		require.NoError(t, p.Approve())
		assert.Equal(t, product.StatusApproved, p.Status())
		assert.True(t, p.IsPubliclyVisible())
	})

	t.Run("reject pending with reason", func(t *testing.T) {
		p := newListing(t)
		require.NoError(t, p.Reject("blurry photos"))
		assert.Equal(t, product.StatusRejected, p.Status())
		require.NotNil(t, p.RejectionReason())
		assert.Equal(t, "blurry photos", *p.RejectionReason())
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		p := newListing(t)
		require.ErrorIs(t, p.Reject("  "), product.ErrEmptyReason)
	})

	t.Run("cannot re-moderate", func(t *testing.T) {
		p := newListing(t)
		require.NoError(t, p.Approve())
		require.ErrorIs(t, p.Approve(), product.ErrNotPending)
		require.ErrorIs(t, p.Reject("x"), product.ErrNotPending)
	})

	t.Run("unavailable approved listing is hidden", func(t *testing.T) {
		p := newListing(t)
		require.NoError(t, p.Approve())
		p.SetAvailable(false)
		assert.False(t, p.IsPubliclyVisible())
	})
}

func TestIsPrivilegedViewer(t *testing.T) {
	p := newListing(t)

	assert.True(t, p.IsPrivilegedViewer(p.OwnerID(), false))
	assert.True(t, p.IsPrivilegedViewer(uuid.New(), true))
	assert.False(t, p.IsPrivilegedViewer(uuid.New(), false))
}
