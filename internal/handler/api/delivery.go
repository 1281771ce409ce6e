package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentimade/internal/domain/delivery"
	resdto "rentimade/internal/handler/dto/response"
)

type DeliveryHandler struct{}

func NewDeliveryHandler() *DeliveryHandler {
	return &DeliveryHandler{}
}

// @Summary Check pincode serviceability
// @Description Report whether delivery is available for a pincode and which city serves it
// @Tags delivery
// @Produce json
// @Param pincode path string true "Six digit pincode"
// @Success 200 {object} resdto.PincodeCheckResponse
// @Router /delivery/pincode/{pincode} [get]
func (h *DeliveryHandler) CheckPincode(c *gin.Context) {
	pincode := c.Param("pincode")
	city, ok := delivery.CityFromPincode(pincode)

	var message string
	if !ok {
		message = delivery.ValidationMessage()
	}

	c.JSON(http.StatusOK, resdto.PincodeCheckResponse{
		Pincode:     pincode,
		Serviceable: ok,
		City:        city,
		Message:     message,
	})
}
