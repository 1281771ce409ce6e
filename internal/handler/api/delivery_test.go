//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"rentimade/internal/handler/api"
	resdto "rentimade/internal/handler/dto/response"
	"rentimade/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPincode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/delivery/pincode/:pincode", api.NewDeliveryHandler().CheckPincode)

	t.Run("serviceable pincode resolves its city", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/delivery/pincode/451001", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body resdto.PincodeCheckResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Serviceable)
		assert.Equal(t, "Khargone", body.City)
		assert.Empty(t, body.Message)
	})

	t.Run("unserviceable pincode carries the delivery-area explanation", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/delivery/pincode/400001", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body resdto.PincodeCheckResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Serviceable)
		assert.Empty(t, body.City)
		assert.Contains(t, body.Message, "We currently deliver only in Khargone and Indore")
	})
}
