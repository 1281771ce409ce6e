//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"rentimade/internal/domain/user"
	"rentimade/internal/handler/api"
	resdto "rentimade/internal/handler/dto/response"
	"rentimade/internal/usecase/commands"
	"rentimade/internal/usecase/queries"
	"rentimade/tests/common/builder"
	"rentimade/tests/common/httptest"
	"rentimade/tests/common/testutil"
	commandsmock "rentimade/tests/mock/commands"
	queriesmock "rentimade/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler

	renterID uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.renterID = uuid.New()

	// Mock middleware behavior for authenticated routes
	authed := func(c *gin.Context) {
		c.Set("user_id", s.renterID)
		c.Set("user_role", user.RoleRenter)
	}

	s.router.POST("/orders", authed, s.handler.CreateOrder)
	s.router.GET("/orders/:id", authed, s.handler.GetOrder)
	s.router.GET("/orders", authed, s.handler.ListOwnOrders)
	s.router.POST("/orders/:id/cancel", authed, s.handler.CancelOrder)
	s.router.GET("/admin/orders", s.handler.ListAllOrders)
	s.router.PATCH("/admin/orders/:id/status", s.handler.UpdateOrderStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	url := "/orders"
	reqBody := builder.NewOrderBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with order id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), reqBody, s.renterID).
			Return(newID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(newID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing product_id", mutate: testutil.Field("product_id", nil)},
			{name: "missing start_date", mutate: testutil.Field("start_date", nil)},
			{name: "missing end_date", mutate: testutil.Field("end_date", nil)},
			{name: "missing address_id", mutate: testutil.Field("address_id", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "product not found",
				commandsError:  commands.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "address not found",
				commandsError:  commands.ErrAddressNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Address not found",
			},
			{
				name:           "unserviceable address",
				commandsError:  commands.ErrAddressUnserviceable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Delivery is not available",
			},
			{
				name:           "own item",
				commandsError:  commands.ErrCannotRentOwnItem,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "your own item",
			},
			{
				name:           "product not rentable",
				commandsError:  commands.ErrProductNotRentable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available for rent",
			},
			{
				name:           "dates unavailable",
				commandsError:  commands.ErrDatesUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "dates are not available",
			},
			{
				name:           "invalid period",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid rental period",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateOrder(gomock.Any(), reqBody, s.renterID).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OrderHandlerTestSuite) TestGetOrder() {
	view := builder.NewOrderBuilder().BuildViewQuery()
	url := "/orders/" + view.ID.String()

	s.Run("success: returns order detail", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.renterID, "renter").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ProductName, response["product_name"])
	})

	s.Run("error: missing and inaccessible orders both return 404", func() {
		for _, qErr := range []error{queries.ErrOrderNotFound, queries.ErrOrderAccess} {
			s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.renterID, "renter").
				Return(nil, qErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
		}
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID format")
	})
}

func (s *OrderHandlerTestSuite) TestListOwnOrders() {
	url := "/orders"

	s.Run("success: returns renter's orders", func() {
		item := builder.NewOrderBuilder().BuildListItem()
		s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.renterID, gomock.Nil(), 0).
			Return([]*queries.OrderListItem{item}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Nil(response.NextCursor)
	})

	s.Run("success: forwards cursor and limit params", func() {
		s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.renterID, &queries.Cursor{After: "v1:abc"}, 5).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=v1:abc&limit=5", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on bad cursor", func() {
		s.mockQueries.EXPECT().ListByRenter(gomock.Any(), s.renterID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination cursor")
	})
}

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelByRenter(gomock.Any(), orderID, s.renterID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when no longer cancellable", func() {
		s.mockCommands.EXPECT().CancelByRenter(gomock.Any(), orderID, s.renterID).
			Return(commands.ErrNotCancellable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer be cancelled")
	})

	s.Run("error: foreign orders look missing", func() {
		s.mockCommands.EXPECT().CancelByRenter(gomock.Any(), orderID, s.renterID).
			Return(commands.ErrOrderAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

func (s *OrderHandlerTestSuite) TestListAllOrders() {
	url := "/admin/orders"

	s.Run("success: passes status filter through", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), gomock.Any(), gomock.Nil(), 0).
			DoAndReturn(func(_ any, filters queries.OrderFilters, _ *queries.Cursor, _ int) ([]*queries.OrderListItem, *queries.Cursor, error) {
				s.Require().NotNil(filters.Status)
				s.Equal("pending", *filters.Status)
				return nil, nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *OrderHandlerTestSuite) TestUpdateOrderStatus() {
	orderID := uuid.New()
	url := "/admin/orders/" + orderID.String() + "/status"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, "confirmed").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "teleported"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 Conflict on illegal transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, "returned").
			Return(commands.ErrIllegalTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "returned"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Illegal status transition")
	})

	s.Run("error: 409 Conflict when the period was booked since", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, "confirmed").
			Return(commands.ErrDatesUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "confirmed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Requested dates are no longer available")
	})
}
