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

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler

	lenderID uuid.UUID
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)
	s.lenderID = uuid.New()

	// Mock middleware behavior for authenticated routes
	authed := func(c *gin.Context) {
		c.Set("user_id", s.lenderID)
		c.Set("user_role", user.RoleLender)
	}

	s.router.GET("/products", s.handler.ListProducts)
	s.router.GET("/products/:id", s.handler.GetProduct)
	s.router.POST("/lending/products", authed, s.handler.CreateListing)
	s.router.GET("/lending/products", authed, s.handler.ListOwnListings)
	s.router.PATCH("/lending/products/:id/availability", authed, s.handler.SetAvailability)
	s.router.GET("/admin/products", s.handler.ListAllProducts)
	s.router.POST("/admin/products/:id/moderate", s.handler.Moderate)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestListProducts() {
	url := "/products"

	s.Run("success: returns items and next cursor", func() {
		item := builder.NewProductBuilder().BuildListItem()
		next := &queries.Cursor{After: "v1:cursor"}
		s.mockQueries.EXPECT().ListApproved(gomock.Any(), gomock.Any(), gomock.Nil(), 0).
			Return([]*queries.ProductListItem{item}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ProductListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(item.ID, response.Items[0].ID)
		s.NotNil(response.NextCursor)
	})

	s.Run("success: empty result yields empty items array", func() {
		s.mockQueries.EXPECT().ListApproved(gomock.Any(), gomock.Any(), gomock.Nil(), 0).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Contains(rec.Body.String(), `"items":[]`)
	})

	s.Run("success: passes filters through", func() {
		categoryID := uuid.New()
		s.mockQueries.EXPECT().ListApproved(gomock.Any(), gomock.Any(), gomock.Nil(), 0).
			DoAndReturn(func(_ any, filters queries.ProductFilters, _ *queries.Cursor, _ int) ([]*queries.ProductListItem, *queries.Cursor, error) {
				s.Require().NotNil(filters.CategoryID)
				s.Equal(categoryID, *filters.CategoryID)
				s.Require().NotNil(filters.MinPrice)
				s.Equal(int64(10000), *filters.MinPrice)
				return nil, nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?category_id="+categoryID.String()+"&min_price=10000", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on invalid cursor", func() {
		s.mockQueries.EXPECT().ListApproved(gomock.Any(), gomock.Any(), gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination cursor")
	})
}

func (s *ProductHandlerTestSuite) TestGetProduct() {
	view := builder.NewProductBuilder().BuildViewQuery()
	url := "/products/" + view.ID.String()

	s.Run("success: returns product detail", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, gomock.Nil(), "").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Name, response["name"])
	})

	s.Run("error: hidden and missing products both return 404", func() {
		for _, qErr := range []error{queries.ErrProductNotFound, queries.ErrProductAccess} {
			s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, gomock.Nil(), "").
				Return(nil, qErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
		}
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product ID format")
	})
}

func (s *ProductHandlerTestSuite) TestListAllProducts() {
	url := "/admin/products"

	s.Run("success: passes status filter through", func() {
		item := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.Status = "pending"
		}).BuildListItem()
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), gomock.Any(), gomock.Nil(), 0).
			DoAndReturn(func(_ any, status *string, _ *queries.Cursor, _ int) ([]*queries.ProductListItem, *queries.Cursor, error) {
				s.Require().NotNil(status)
				s.Equal("pending", *status)
				return []*queries.ProductListItem{item}, nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending", nil, "")

		var response resdto.ProductListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
	})

	s.Run("success: no filter lists every status", func() {
		s.mockQueries.EXPECT().ListByStatus(gomock.Any(), gomock.Nil(), gomock.Nil(), 0).
			Return(nil, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=archived", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product status")
	})
}

func (s *ProductHandlerTestSuite) TestCreateListing() {
	url := "/lending/products"
	reqBody := builder.NewProductBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with new listing id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().CreateListing(gomock.Any(), gomock.Any(), gomock.Any()).
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
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing size", mutate: testutil.Field("size", nil)},
			{name: "zero rental rate", mutate: testutil.Field("rental_per_day_paise", 0)},
			{name: "negative deposit", mutate: testutil.Field("deposit_paise", -1)},
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
				name:           "category not found",
				commandsError:  commands.ErrCategoryNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Category not found",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid listing data",
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
				s.mockCommands.EXPECT().CreateListing(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ProductHandlerTestSuite) TestSetAvailability() {
	productID := uuid.New()
	url := "/lending/products/" + productID.String() + "/availability"
	reqBody := map[string]any{"is_available": false}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), productID, s.lenderID, false).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for non-owner", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), productID, s.lenderID, false).
			Return(commands.ErrNotProductOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only the owner can change availability")
	})

	s.Run("error: 404 Not Found for missing product", func() {
		s.mockCommands.EXPECT().SetAvailability(gomock.Any(), productID, s.lenderID, false).
			Return(commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *ProductHandlerTestSuite) TestModerate() {
	productID := uuid.New()
	url := "/admin/products/" + productID.String() + "/moderate"

	s.Run("success: approve returns 204 No Content", func() {
		s.mockCommands.EXPECT().Moderate(gomock.Any(), productID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "approve"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on unknown action", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"action": "publish"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
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
				name:           "already moderated",
				commandsError:  commands.ErrProductNotPending,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not pending",
			},
			{
				name:           "reject without reason",
				commandsError:  commands.ErrRejectionReasonRequired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "requires a reason",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Moderate(gomock.Any(), productID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					map[string]any{"action": "reject"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
