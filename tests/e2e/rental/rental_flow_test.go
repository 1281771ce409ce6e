//go:build e2e

package rental_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"rentimade/internal/domain/user"
	"rentimade/internal/handler/dto/request"
	"rentimade/internal/handler/dto/response"
	"rentimade/internal/usecase/queries"
	"rentimade/tests/common/authtest"
	"rentimade/tests/common/dbtest"
	"rentimade/tests/common/httptest"
	"rentimade/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type rentalFlowSuite struct {
	e2e.SharedSuite

	lenderToken string
	renterToken string
	adminToken  string

	categoryID uuid.UUID
}

func TestRentalFlowSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(rentalFlowSuite))
}

func (s *rentalFlowSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.lenderToken = authtest.CreateAndLogin(t, s.DB, s.Router, "lender@example.com", string(user.RoleLender))
	s.renterToken = authtest.CreateAndLogin(t, s.DB, s.Router, "renter@example.com", string(user.RoleRenter))
	s.adminToken = authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

	s.categoryID = dbtest.CreateTestCategory(t, s.DB, "Lehengas", "lehengas")
}

func (s *rentalFlowSuite) createListing(token string) uuid.UUID {
	t := s.T()

	body := request.CreateProductRequest{
		CategoryID:        s.categoryID,
		Name:              "Banarasi Silk Lehenga",
		Brand:             "Sabyasachi",
		Size:              "M",
		RentalPerDayPaise: 50000,
		DepositPaise:      100000,
		ImageURLs:         []string{"https://cdn.example.com/lehenga-1.jpg"},
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/lending/products", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.IDResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.ID
}

func (s *rentalFlowSuite) moderate(productID uuid.UUID, action string, reason *string) {
	t := s.T()

	body := request.ModerateProductRequest{Action: action, Reason: reason}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost,
		fmt.Sprintf("/api/admin/products/%s/moderate", productID), body, s.adminToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func (s *rentalFlowSuite) createAddress(token string) uuid.UUID {
	t := s.T()

	body := request.CreateAddressRequest{
		Label:     "Home",
		Line1:     "12 MG Road",
		Pincode:   "452001",
		IsDefault: true,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/me/addresses", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.IDResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res.ID
}

func (s *rentalFlowSuite) createOrder(token string, productID, addressID uuid.UUID, start, end time.Time) (*response.IDResponse, int, string) {
	t := s.T()

	body := request.CreateOrderRequest{
		ProductID: productID,
		StartDate: start.Format(time.DateOnly),
		EndDate:   end.Format(time.DateOnly),
		AddressID: addressID,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/orders", body, token)
	if w.Code != http.StatusCreated {
		return nil, w.Code, w.Body.String()
	}
	var res response.IDResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return &res, w.Code, ""
}

func (s *rentalFlowSuite) setOrderStatus(orderID uuid.UUID, status string) int {
	t := s.T()

	body := request.UpdateOrderStatusRequest{Status: status}
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
		fmt.Sprintf("/api/admin/orders/%s/status", orderID), body, s.adminToken)
	return w.Code
}

func (s *rentalFlowSuite) TestFullRentalLifecycle() {
	s.Run("listing to review", func() {
		t := s.T()

		productID := s.createListing(s.lenderToken)

		// Pending listings stay out of the public catalog
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/products", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var list response.ProductListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Empty(t, list.Items)

		// Anonymous users cannot see a pending listing even by id
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/products/"+productID.String(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		// The owner still can
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/products/"+productID.String(), nil, s.lenderToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		s.moderate(productID, request.ModerationActionApprove, nil)

		// Approved listings show up publicly
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/products", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		list = response.ProductListResponse{}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list.Items, 1)
		require.Equal(t, productID, list.Items[0].ID)

		// Renter books it for a 3-day window
		addressID := s.createAddress(s.renterToken)
		start := time.Now().AddDate(0, 0, 7)
		end := start.AddDate(0, 0, 2)
		orderRes, code, bodyStr := s.createOrder(s.renterToken, productID, addressID, start, end)
		require.Equal(t, http.StatusCreated, code, bodyStr)
		orderID := orderRes.ID

		// 3 days x 50000 rent plus 100000 deposit
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+orderID.String(), nil, s.renterToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var orderView struct {
			RentPaise  int64  `json:"rent_paise"`
			TotalPaise int64  `json:"total_paise"`
			Status     string `json:"status"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &orderView))
		require.Equal(t, int64(150000), orderView.RentPaise)
		require.Equal(t, int64(250000), orderView.TotalPaise)
		require.Equal(t, "pending", orderView.Status)

		// The lender sees the booking on their side
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/lending/orders", nil, s.lenderToken)
		require.Equal(t, http.StatusOK, w.Code)
		var lending response.OrderListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &lending))
		require.Len(t, lending.Items, 1)

		// Admin walks the order through the lifecycle
		require.Equal(t, http.StatusNoContent, s.setOrderStatus(orderID, "confirmed"))
		require.Equal(t, http.StatusNoContent, s.setOrderStatus(orderID, "delivered"))
		require.Equal(t, http.StatusNoContent, s.setOrderStatus(orderID, "returned"))

		// Skipping states is rejected
		require.Equal(t, http.StatusConflict, s.setOrderStatus(orderID, "confirmed"))

		// A returned order unlocks the review
		reviewBody := request.CreateReviewRequest{
			ProductID: productID,
			OrderID:   orderID,
			Rating:    5,
			Comment:   "Fit perfectly, great condition!",
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", reviewBody, s.renterToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// One review per order
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reviews", reviewBody, s.renterToken)
		require.Equal(t, http.StatusConflict, w.Code)

		// Stats reflect the new review
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/products/"+productID.String()+"/reviews", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var reviews response.ProductReviewsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &reviews))
		require.Len(t, reviews.Items, 1)
		require.NotNil(t, reviews.Stats)
		require.Equal(t, int32(1), reviews.Stats.TotalReviews)
		require.InDelta(t, 5.0, reviews.Stats.AverageRating, 0.01)
	})
}

func (s *rentalFlowSuite) TestModerationReject() {
	s.Run("reject requires a reason and hides the listing", func() {
		t := s.T()

		productID := s.createListing(s.lenderToken)

		// The new listing shows up in the moderation queue
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/products?status=pending", nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), productID.String())

		// No reason, no rejection
		body := request.ModerateProductRequest{Action: request.ModerationActionReject}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/products/%s/moderate", productID), body, s.adminToken)
		require.Equal(t, http.StatusBadRequest, w.Code)

		reason := "Photos too blurry to verify condition"
		body.Reason = &reason
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/products/%s/moderate", productID), body, s.adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Still invisible to the public
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/products/"+productID.String(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		// The owner sees the rejection reason
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/products/"+productID.String(), nil, s.lenderToken)
		require.Equal(t, http.StatusOK, w.Code)
		var detail struct {
			Status          string  `json:"status"`
			RejectionReason *string `json:"rejection_reason"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.Equal(t, "rejected", detail.Status)
		require.NotNil(t, detail.RejectionReason)
		require.Equal(t, reason, *detail.RejectionReason)

		// Already moderated listings cannot be moderated again
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/admin/products/%s/moderate", productID),
			request.ModerateProductRequest{Action: request.ModerationActionApprove}, s.adminToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func (s *rentalFlowSuite) TestOrderValidation() {
	s.Run("owners cannot rent their own item", func() {
		t := s.T()

		productID := s.createListing(s.lenderToken)
		s.moderate(productID, request.ModerationActionApprove, nil)
		addressID := s.createAddress(s.lenderToken)

		start := time.Now().AddDate(0, 0, 7)
		_, code, _ := s.createOrder(s.lenderToken, productID, addressID, start, start.AddDate(0, 0, 1))
		require.Equal(t, http.StatusUnprocessableEntity, code)
	})

	s.Run("unserviceable pincode is rejected at address creation", func() {
		t := s.T()

		body := request.CreateAddressRequest{
			Label:   "Office",
			Line1:   "1 Marine Drive",
			Pincode: "400001", // Mumbai, outside delivery areas
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/me/addresses", body, s.renterToken)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), "We currently deliver only in Khargone and Indore")
	})

	s.Run("confirmed orders block overlapping dates", func() {
		t := s.T()

		productID := s.createListing(s.lenderToken)
		s.moderate(productID, request.ModerationActionApprove, nil)
		addressID := s.createAddress(s.renterToken)

		start := time.Now().AddDate(0, 0, 7)
		end := start.AddDate(0, 0, 3)

		first, code, bodyStr := s.createOrder(s.renterToken, productID, addressID, start, end)
		require.Equal(t, http.StatusCreated, code, bodyStr)

		// A pending order does not block the calendar yet
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "renter2@example.com", string(user.RoleRenter))
		otherAddress := s.createAddress(otherToken)
		second, code, bodyStr := s.createOrder(otherToken, productID, otherAddress, start, end)
		require.Equal(t, http.StatusCreated, code, bodyStr)

		// Once confirmed, overlapping bookings are refused
		require.Equal(t, http.StatusNoContent, s.setOrderStatus(first.ID, "confirmed"))

		thirdToken := authtest.CreateAndLogin(t, s.DB, s.Router, "renter3@example.com", string(user.RoleRenter))
		thirdAddress := s.createAddress(thirdToken)
		_, code, _ = s.createOrder(thirdToken, productID, thirdAddress, start.AddDate(0, 0, 1), end.AddDate(0, 0, 1))
		require.Equal(t, http.StatusConflict, code)

		// Disjoint dates are still fine
		_, code, bodyStr = s.createOrder(thirdToken, productID, thirdAddress, end.AddDate(0, 0, 5), end.AddDate(0, 0, 7))
		require.Equal(t, http.StatusCreated, code, bodyStr)

		// The overlapping pending order cannot be confirmed either
		require.Equal(t, http.StatusConflict, s.setOrderStatus(second.ID, "confirmed"))
	})
}

func (s *rentalFlowSuite) TestCancelOrder() {
	s.Run("renter can cancel while pending", func() {
		t := s.T()

		productID := s.createListing(s.lenderToken)
		s.moderate(productID, request.ModerationActionApprove, nil)
		addressID := s.createAddress(s.renterToken)

		start := time.Now().AddDate(0, 0, 7)
		res, code, bodyStr := s.createOrder(s.renterToken, productID, addressID, start, start.AddDate(0, 0, 1))
		require.Equal(t, http.StatusCreated, code, bodyStr)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/orders/%s/cancel", res.ID), nil, s.renterToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Cancelled orders cannot be cancelled twice
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/orders/%s/cancel", res.ID), nil, s.renterToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("strangers cannot see or cancel the order", func() {
		t := s.T()

		productID := s.createListing(s.lenderToken)
		s.moderate(productID, request.ModerationActionApprove, nil)
		addressID := s.createAddress(s.renterToken)

		start := time.Now().AddDate(0, 0, 7)
		res, code, bodyStr := s.createOrder(s.renterToken, productID, addressID, start, start.AddDate(0, 0, 1))
		require.Equal(t, http.StatusCreated, code, bodyStr)

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleRenter))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/orders/"+res.ID.String(), nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code, "order existence must not leak")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/orders/%s/cancel", res.ID), nil, otherToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *rentalFlowSuite) TestDefaultAddress() {
	s.Run("only one default address survives per user", func() {
		t := s.T()

		first := s.createAddress(s.renterToken)
		second := s.createAddress(s.renterToken)

		listDefaults := func() (uuid.UUID, int) {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me/addresses", nil, s.renterToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var views []*queries.AddressView
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &views))
			require.Len(t, views, 2)

			var defaultID uuid.UUID
			count := 0
			for _, v := range views {
				if v.IsDefault {
					defaultID = v.ID
					count++
				}
			}
			return defaultID, count
		}

		defaultID, count := listDefaults()
		require.Equal(t, 1, count)
		require.Equal(t, second, defaultID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			"/api/me/addresses/"+first.String()+"/default", nil, s.renterToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		defaultID, count = listDefaults()
		require.Equal(t, 1, count)
		require.Equal(t, first, defaultID)
	})
}

func (s *rentalFlowSuite) TestWishlistToggle() {
	s.Run("toggle adds then removes", func() {
		t := s.T()

		productID := s.createListing(s.lenderToken)
		s.moderate(productID, request.ModerationActionApprove, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/wishlist/%s/toggle", productID), nil, s.renterToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var toggle response.WishlistToggleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &toggle))
		require.True(t, toggle.Added)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/wishlist/ids", nil, s.renterToken)
		require.Equal(t, http.StatusOK, w.Code)
		var ids []uuid.UUID
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &ids))
		require.Equal(t, []uuid.UUID{productID}, ids)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("/api/wishlist/%s/toggle", productID), nil, s.renterToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &toggle))
		require.False(t, toggle.Added)
	})
}

func (s *rentalFlowSuite) TestRoleEnforcement() {
	s.Run("renters cannot list items or reach admin routes", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/lending/products",
			request.CreateProductRequest{CategoryID: s.categoryID, Name: "X", Size: "M", RentalPerDayPaise: 100}, s.renterToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, s.renterToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, s.lenderToken)
		require.Equal(t, http.StatusForbidden, w.Code, "lenders are not admins")
	})
}
