package handlers

import (
	"net/http"

	"milesconnect-ml/internal/api/models"
	"milesconnect-ml/internal/inference"

	"github.com/gin-gonic/gin"
)

const serviceName = "MilesConnect ML Service"

// HealthHandler reports service and model availability.
type HealthHandler struct {
	models *inference.Registry
}

func NewHealthHandler(reg *inference.Registry) *HealthHandler {
	return &HealthHandler{models: reg}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Models:  h.models.Availability(),
	})
}
