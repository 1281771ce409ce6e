package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "rentimade/internal/handler/dto/request"
	resdto "rentimade/internal/handler/dto/response"
	"rentimade/internal/usecase/commands"
	"rentimade/internal/usecase/queries"
)

type BannerHandler struct {
	bannerCommands commands.BannerCommands
	bannerQueries  queries.BannerQueries
}

func NewBannerHandler(bannerCommands commands.BannerCommands, bannerQueries queries.BannerQueries) *BannerHandler {
	return &BannerHandler{
		bannerCommands: bannerCommands,
		bannerQueries:  bannerQueries,
	}
}

// @Summary List active banners
// @Description List banners currently shown on the home page, in display order
// @Tags banners
// @Produce json
// @Success 200 {array} queries.BannerView
// @Router /banners [get]
func (h *BannerHandler) ListActive(c *gin.Context) {
	views, err := h.bannerQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.BannerView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List all banners
// @Description List every banner including inactive ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BannerView
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/banners [get]
func (h *BannerHandler) ListAll(c *gin.Context) {
	views, err := h.bannerQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.BannerView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create banner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBannerRequest true "Banner"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/banners [post]
func (h *BannerHandler) Create(c *gin.Context) {
	var req reqdto.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.bannerCommands.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid banner data",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update banner
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Param request body reqdto.UpdateBannerRequest true "Banner"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/banners/{id} [put]
func (h *BannerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid banner ID format",
		})
		return
	}

	var req reqdto.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bannerCommands.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrBannerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Banner not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid banner data",
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

// @Summary Delete banner
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Banner ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/banners/{id} [delete]
func (h *BannerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid banner ID format",
		})
		return
	}

	if err := h.bannerCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrBannerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Banner not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
