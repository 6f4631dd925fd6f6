package handlers

import (
	"net/http"

	"milesconnect-ml/internal/api/models"
	"milesconnect-ml/internal/inference"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler handles maintenance prediction requests.
type MaintenanceHandler struct {
	models *inference.Registry
}

func NewMaintenanceHandler(reg *inference.Registry) *MaintenanceHandler {
	return &MaintenanceHandler{models: reg}
}

// Predict handles POST /api/ml/maintenance-prediction
func (h *MaintenanceHandler) Predict(c *gin.Context) {
	var req models.VehicleData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if h.models.Maintenance == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MODEL_UNAVAILABLE",
				Message: "Maintenance prediction model not available",
			},
		})
		return
	}

	stats := req.ToStats()
	pred, err := h.models.Maintenance.Predict(stats.Features())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INFERENCE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	probs := make(map[string]float64, len(pred.Probabilities))
	for class, p := range pred.Probabilities {
		probs[class] = round4(p)
	}

	c.JSON(http.StatusOK, models.MaintenancePredictionResponse{
		VehicleID:            stats.VehicleID,
		PredictedClass:       pred.Class,
		Confidence:           round4(pred.Confidence),
		DaysUntilMaintenance: pred.DaysUntil,
		ClassProbabilities:   probs,
	})
}
