package v1

import (
	"net/http"

	"destiny-global-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

// NewHealthHandler registers the service banner and health check routes
func NewHealthHandler(root *gin.Engine, api *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}

	root.GET("/", handler.Info)
	api.GET("/health", handler.Health)
}

// Info godoc
// @Summary      Service banner
// @Tags         health
// @Produce      json
// @Success      200  {object}  usecase.ServiceInfo
// @Router       / [get]
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Info(c.Request.Context()))
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  usecase.HealthStatus
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}
