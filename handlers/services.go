package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListServicesHandler handles GET /service.
func (h *BookingHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Service.ListServiceNames(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// AvailabilityHandler handles GET /available?date=.
func (h *BookingHandler) AvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	services, err := h.Service.GetAvailability(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("Failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}
