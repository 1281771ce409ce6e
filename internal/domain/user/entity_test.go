//go:build unit

package user_test

import (
	"testing"

	"rentimade/internal/domain/user"
	"rentimade/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

func TestNewUser(t *testing.T) {
	actual, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	require.NotNil(t, actual)

	email, err := user.NewEmail("test@example.com")
	require.NoError(t, err)
	expected := user.NewUser(email, "hashed_password", "Test User", nil, user.RoleRenter)

	if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
		t.Errorf("User mismatch (-want +got):\n%s", diff)
	}

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.True(t, actual.IsActive())
	assert.Nil(t, actual.LastLogin())
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "renter@example.com"},
		{name: "trims whitespace", input: "  renter@example.com  "},
		{name: "missing at sign", input: "renter.example.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "renter@", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewEmail(tc.input)
			if tc.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestNewPhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "ten digit mobile", input: "9826012345"},
		{name: "with country code", input: "+919826012345"},
		{name: "with spaces", input: "98260 12345"},
		{name: "landline style", input: "0731241234", errIs: user.ErrInvalidPhone},
		{name: "too short", input: "98260", errIs: user.ErrInvalidPhone},
		{name: "empty", input: "", errIs: user.ErrInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewPhone(tc.input)
			if tc.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"renter", "lender", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("operator")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestBankDetails(t *testing.T) {
	t.Run("valid details", func(t *testing.T) {
		acct, err := user.NewAccountNumber("123456789012")
		require.NoError(t, err)
		ifsc, err := user.NewIFSC("hdfc0001234")
		require.NoError(t, err)

		details := user.NewBankDetails("Priya Sharma", acct, ifsc)
		assert.Equal(t, "Priya Sharma", details.AccountHolder())
		assert.Equal(t, "HDFC0001234", details.IFSC().Value())
		assert.Equal(t, "********9012", details.AccountNumber().Masked())
	})

	t.Run("bad account number", func(t *testing.T) {
		_, err := user.NewAccountNumber("12ab")
		require.ErrorIs(t, err, user.ErrInvalidAccount)
	})

	t.Run("bad ifsc", func(t *testing.T) {
		_, err := user.NewIFSC("HD0001234")
		require.ErrorIs(t, err, user.ErrInvalidIFSC)
	})
}

func TestNewAddress(t *testing.T) {
	userID := uuid.New()

	t.Run("serviceable pincode resolves city", func(t *testing.T) {
		addr, err := user.NewAddress(userID, "Home", "12 MG Road", "", "452005", true)
		require.NoError(t, err)
		assert.Equal(t, "Indore", addr.City())
		assert.Equal(t, "452005", addr.Pincode())
		assert.True(t, addr.IsDefault())
	})

	t.Run("unserviceable pincode rejected", func(t *testing.T) {
		_, err := user.NewAddress(userID, "Home", "12 MG Road", "", "400001", false)
		require.ErrorIs(t, err, user.ErrUnserviceablePincode)
	})

	t.Run("empty first line rejected", func(t *testing.T) {
		_, err := user.NewAddress(userID, "Home", "   ", "", "452005", false)
		require.ErrorIs(t, err, user.ErrEmptyAddressLine)
	})
}
