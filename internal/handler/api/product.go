package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rentimade/internal/domain/product"
	reqdto "rentimade/internal/handler/dto/request"
	resdto "rentimade/internal/handler/dto/response"
	"rentimade/internal/handler/middleware"
	"rentimade/internal/usecase/commands"
	"rentimade/internal/usecase/queries"
)

type ProductHandler struct {
	productCommands commands.ProductCommands
	productQueries  queries.ProductQueries
}

func NewProductHandler(productCommands commands.ProductCommands, productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{
		productCommands: productCommands,
		productQueries:  productQueries,
	}
}

func parseProductFilters(c *gin.Context) queries.ProductFilters {
	var filters queries.ProductFilters
	if raw := c.Query("category_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filters.CategoryID = &id
		}
	}
	if raw := c.Query("search"); raw != "" {
		filters.Search = &raw
	}
	if raw := c.Query("size"); raw != "" {
		filters.Size = &raw
	}
	if min, ok := queryInt64(c, "min_price"); ok {
		filters.MinPrice = &min
	}
	if max, ok := queryInt64(c, "max_price"); ok {
		filters.MaxPrice = &max
	}
	return filters
}

// @Summary List products
// @Description List approved products with optional filters, newest first
// @Tags products
// @Produce json
// @Param category_id query string false "Category ID"
// @Param search query string false "Name or brand substring"
// @Param size query string false "Size filter"
// @Param min_price query int false "Minimum rental per day in paise"
// @Param max_price query int false "Maximum rental per day in paise"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} map[string]string
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	cursor, limit := parsePagination(c)
	filters := parseProductFilters(c)

	items, next, err := h.productQueries.ListApproved(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewProductListResponse(items, next))
}

// @Summary Get product
// @Description Get product detail. Pending and rejected products are only visible to their owner and admins.
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.ProductView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	viewerID, viewerRole := viewerFromContext(c)
	view, err := h.productQueries.GetByID(c.Request.Context(), id, viewerID, viewerRole)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProductNotFound), errors.Is(err, queries.ErrProductAccess):
			// Hidden listings look identical to missing ones.
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Get product availability
// @Description Get the selectable rental window and booked-out dates for a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id}/availability [get]
func (h *ProductHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	viewerID, viewerRole := viewerFromContext(c)
	view, err := h.productQueries.GetAvailability(c.Request.Context(), id, viewerID, viewerRole)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProductNotFound), errors.Is(err, queries.ErrProductAccess):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Create listing
// @Description Create a new product listing. It stays pending until an admin approves it.
// @Tags lending
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Listing request"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /lending/products [post]
func (h *ProductHandler) CreateListing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.productCommands.CreateListing(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Category not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid listing data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary List own listings
// @Description List the authenticated lender's products in every status
// @Tags lending
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 401 {object} map[string]string
// @Router /lending/products [get]
func (h *ProductHandler) ListOwnListings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cursor, limit := parsePagination(c)
	items, next, err := h.productQueries.ListByOwner(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewProductListResponse(items, next))
}

// @Summary List all products
// @Description List products in any status for moderation, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Product status filter (pending, approved, rejected)"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/products [get]
func (h *ProductHandler) ListAllProducts(c *gin.Context) {
	var status *string
	if raw := c.Query("status"); raw != "" {
		parsed, err := product.NewStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid product status",
			})
			return
		}
		s := parsed.String()
		status = &s
	}

	cursor, limit := parsePagination(c)
	items, next, err := h.productQueries.ListByStatus(c.Request.Context(), status, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewProductListResponse(items, next))
}

// @Summary Toggle listing availability
// @Description Pause or resume an approved listing
// @Tags lending
// @Accept json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductAvailabilityRequest true "Availability flag"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lending/products/{id}/availability [patch]
func (h *ProductHandler) SetAvailability(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.UpdateProductAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.productCommands.SetAvailability(c.Request.Context(), id, userID, req.IsAvailable); err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, commands.ErrNotProductOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the owner can change availability",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Moderate product
// @Description Approve or reject a pending listing
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ModerateProductRequest true "Moderation action"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/products/{id}/moderate [post]
func (h *ProductHandler) Moderate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.ModerateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.productCommands.Moderate(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, commands.ErrProductNotPending):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Product is not pending moderation",
			})
		case errors.Is(err, commands.ErrRejectionReasonRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Rejection requires a reason",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
