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

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler

	userID uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock middleware behavior for authenticated routes
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleRenter)
	}

	s.router.GET("/products/:id/reviews", s.handler.ListProductReviews)
	s.router.GET("/me/reviews", authed, s.handler.ListOwnReviews)
	s.router.POST("/reviews", authed, s.handler.CreateReview)
	s.router.PUT("/reviews/:id", authed, s.handler.UpdateReview)
	s.router.DELETE("/reviews/:id", authed, s.handler.DeleteReview)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) TestListProductReviews() {
	productID := uuid.New()
	url := "/products/" + productID.String() + "/reviews"

	s.Run("success: returns reviews with rating stats", func() {
		item := builder.NewReviewBuilder().BuildListItem()
		stats := &queries.ProductRatingStats{
			ProductID:     productID,
			TotalReviews:  3,
			AverageRating: 4.33,
		}
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), productID, gomock.Nil(), 0).
			Return([]*queries.ReviewListItem{item}, nil, nil).Times(1)
		s.mockQueries.EXPECT().GetProductRatingStats(gomock.Any(), productID).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ProductReviewsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(int32(3), response.Stats.TotalReviews)
		s.InDelta(4.33, response.Stats.AverageRating, 0.001)
	})

	s.Run("success: empty slice when product has no reviews", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), productID, gomock.Nil(), 0).
			Return(nil, nil, nil).Times(1)
		s.mockQueries.EXPECT().GetProductRatingStats(gomock.Any(), productID).
			Return(&queries.ProductRatingStats{ProductID: productID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"items":[]`)
	})

	s.Run("error: 400 Bad Request on malformed product id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/abc/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid product ID format")
	})

	s.Run("error: 400 Bad Request on invalid cursor", func() {
		s.mockQueries.EXPECT().ListByProduct(gomock.Any(), productID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=bogus", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination cursor")
	})
}

func (s *ReviewHandlerTestSuite) TestListOwnReviews() {
	url := "/me/reviews"

	s.Run("success: returns the caller's reviews", func() {
		item := builder.NewReviewBuilder().BuildListItem()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, s.userID, "renter", gomock.Nil(), 0).
			Return([]*queries.ReviewListItem{item}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
	})
}

func (s *ReviewHandlerTestSuite) TestCreateReview() {
	url := "/reviews"
	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with review id", func() {
		newID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
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
			{name: "missing order_id", mutate: testutil.Field("order_id", nil)},
			{name: "rating below minimum", mutate: testutil.Field("rating", 0)},
			{name: "rating above maximum", mutate: testutil.Field("rating", 6)},
			{name: "missing comment", mutate: testutil.Field("comment", "")},
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
				name:           "order not found",
				commandsError:  commands.ErrOrderNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Order not found",
			},
			{
				name:           "order not eligible",
				commandsError:  commands.ErrOrderNotEligible,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not eligible for review",
			},
			{
				name:           "duplicate review",
				commandsError:  commands.ErrReviewAlreadyExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already has a review",
			},
			{
				name:           "invalid review data",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid review data",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.userID).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReviewHandlerTestSuite) TestUpdateReview() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()
	reqBody := builder.NewReviewBuilder().With(func(r *builder.ReviewBuilder) {
		r.Rating = 3
		r.Comment = "Colour faded after one wash"
	}).BuildUpdateRequestDTO()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), reviewID, reqBody, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden when not the author", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), reviewID, reqBody, s.userID).
			Return(commands.ErrReviewAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "cannot modify this review")
	})

	s.Run("error: 404 Not Found on missing review", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), reviewID, reqBody, s.userID).
			Return(commands.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Review not found")
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reviews/not-a-uuid", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid review ID format")
	})
}

func (s *ReviewHandlerTestSuite) TestDeleteReview() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), reviewID, s.userID, "renter").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden when not the author", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), reviewID, s.userID, "renter").
			Return(commands.ErrReviewAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "cannot modify this review")
	})
}
