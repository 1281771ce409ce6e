//go:build unit

package delivery_test

import (
	"testing"

	"rentimade/internal/domain/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPincode(t *testing.T) {
	cases := []struct {
		name    string
		pincode string
		valid   bool
		city    string
	}{
		{name: "Khargone pincode", pincode: "451001", valid: true, city: "Khargone"},
		{name: "Indore pincode", pincode: "452005", valid: true, city: "Indore"},
		{name: "Indore outskirt pincode", pincode: "453771", valid: true, city: "Indore"},
		{name: "unserviceable pincode", pincode: "999999", valid: false},
		{name: "empty string", pincode: "", valid: false},
		{name: "whitespace only", pincode: "   ", valid: false},
		{name: "non numeric", pincode: "abcdef", valid: false},
		{name: "five digits", pincode: "45100", valid: false},
		{name: "seven digits", pincode: "4510011", valid: false},
		{name: "leading and trailing spaces trimmed", pincode: " 452005 ", valid: true, city: "Indore"},
		{name: "mumbai pincode", pincode: "400001", valid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, delivery.IsValidPincode(tc.pincode))

			city, ok := delivery.CityFromPincode(tc.pincode)
			assert.Equal(t, tc.valid, ok, "CityFromPincode must pair with IsValidPincode")
			assert.Equal(t, tc.city, city)
		})
	}
}

// Repeated calls over the same input must not change results.
func TestPincodeLookupIdempotence(t *testing.T) {
	for range 3 {
		assert.True(t, delivery.IsValidPincode("451001"))
		city, ok := delivery.CityFromPincode("451001")
		require.True(t, ok)
		assert.Equal(t, "Khargone", city)
	}
}

func TestServiceableCities(t *testing.T) {
	assert.Equal(t, []string{"Khargone", "Indore"}, delivery.ServiceableCities())
}

func TestValidationMessage(t *testing.T) {
	msg := delivery.ValidationMessage()
	assert.Contains(t, msg, "Khargone")
	assert.Contains(t, msg, "Indore")
}
