package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "rentimade/internal/handler/dto/response"
	"rentimade/internal/handler/middleware"
	"rentimade/internal/usecase/commands"
	"rentimade/internal/usecase/queries"
)

type WishlistHandler struct {
	wishlistCommands commands.WishlistCommands
	wishlistQueries  queries.WishlistQueries
}

func NewWishlistHandler(wishlistCommands commands.WishlistCommands, wishlistQueries queries.WishlistQueries) *WishlistHandler {
	return &WishlistHandler{
		wishlistCommands: wishlistCommands,
		wishlistQueries:  wishlistQueries,
	}
}

// @Summary List wishlist
// @Description List the authenticated user's wishlisted products
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ProductListItem
// @Failure 401 {object} map[string]string
// @Router /wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.wishlistQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if items == nil {
		items = []*queries.ProductListItem{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary List wishlist product IDs
// @Description Product IDs only, for marking hearts on listing pages
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} map[string]string
// @Router /wishlist/ids [get]
func (h *WishlistHandler) ListIDs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	ids, err := h.wishlistQueries.ListProductIDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}
	c.JSON(http.StatusOK, ids)
}

// @Summary Toggle wishlist entry
// @Description Add the product to the wishlist, or remove it if already present
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.WishlistToggleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wishlist/{id}/toggle [post]
func (h *WishlistHandler) Toggle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	result, err := h.wishlistCommands.Toggle(c.Request.Context(), userID, productID)
	if err != nil {
		if errors.Is(err, commands.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.WishlistToggleResponse{
		ProductID: result.ProductID,
		Added:     result.Added,
	})
}
