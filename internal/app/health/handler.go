package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Check(c *gin.Context)
}

type handler struct {
	service *HealthService
}

func NewHandler(service *HealthService) Handler {
	return &handler{service: service}
}

// @Summary Health check
// @Description Check that the service and its store are reachable
// @Tags Health
// @Produce json
// @Success 200 {object} utils.HealthStatus
// @Failure 503 {object} utils.HealthStatus
// @Router /health [get]
func (h *handler) Check(c *gin.Context) {
	status := h.service.Check(c.Request.Context())
	if status.Status == "healthy" {
		c.JSON(http.StatusOK, status)
		return
	}
	c.JSON(http.StatusServiceUnavailable, status)
}
