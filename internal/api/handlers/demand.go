package handlers

import (
	"net/http"
	"time"

	"milesconnect-ml/internal/api/models"
	"milesconnect-ml/internal/inference"

	"github.com/gin-gonic/gin"
)

const forecastHorizonDays = 7

// DemandHandler handles demand forecasting requests.
type DemandHandler struct {
	models *inference.Registry
	// now is swappable so tests get stable forecast dates.
	now func() time.Time
}

func NewDemandHandler(reg *inference.Registry) *DemandHandler {
	return &DemandHandler{models: reg, now: time.Now}
}

// Forecast handles POST /api/ml/demand-forecast
func (h *DemandHandler) Forecast(c *gin.Context) {
	var req models.DemandForecastData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if h.models.Demand == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MODEL_UNAVAILABLE",
				Message: "Demand forecast model not available",
			},
		})
		return
	}

	snapshot := req.ToSnapshot()
	next, err := h.models.Demand.Predict(snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INFERENCE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	if next < 0 {
		next = 0
	}

	from := h.now().UTC().AddDate(0, 0, 1)
	rollout, err := h.models.Demand.ForecastNextNDays(snapshot, from, forecastHorizonDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INFERENCE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	forecast := make([]models.ForecastDay, len(rollout))
	for i, d := range rollout {
		forecast[i] = models.ForecastDay{
			Date:               d.Date,
			PredictedShipments: d.PredictedShipments,
		}
	}

	c.JSON(http.StatusOK, models.DemandForecastResponse{
		PredictedShipments: int(next),
		Forecast7d:         forecast,
	})
}
