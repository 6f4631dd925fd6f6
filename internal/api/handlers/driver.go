package handlers

import (
	"math"
	"net/http"

	"milesconnect-ml/internal/analysis"
	"milesconnect-ml/internal/api/models"
	"milesconnect-ml/internal/inference"
	"milesconnect-ml/internal/model"

	"github.com/gin-gonic/gin"
)

// DriverHandler handles driver scoring requests.
type DriverHandler struct {
	models *inference.Registry
}

func NewDriverHandler(reg *inference.Registry) *DriverHandler {
	return &DriverHandler{models: reg}
}

// Score handles POST /api/ml/driver-score
func (h *DriverHandler) Score(c *gin.Context) {
	var req models.DriverData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if h.models.Driver == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MODEL_UNAVAILABLE",
				Message: "Driver scoring model not available",
			},
		})
		return
	}

	stats := req.ToStats()
	score, err := h.models.Driver.Predict(stats.Features())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INFERENCE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.DriverScoreResponse{
		DriverID: stats.DriverID,
		Score:    round2(score),
		Metrics:  driverMetrics(stats, true),
	})
}

// ScoreBatch handles POST /api/ml/driver-score/batch
// The body is a JSON array of driver records; the response is sorted
// by score descending.
func (h *DriverHandler) ScoreBatch(c *gin.Context) {
	var req []models.DriverData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	if h.models.Driver == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MODEL_UNAVAILABLE",
				Message: "Driver scoring model not available",
			},
		})
		return
	}

	rows := make([]map[string]float64, len(req))
	stats := make([]model.DriverStats, len(req))
	for i, d := range req {
		stats[i] = d.ToStats()
		rows[i] = stats[i].Features()
	}

	scores, err := h.models.Driver.PredictBatch(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INFERENCE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	scored := make([]analysis.ScoredDriver, len(stats))
	for i := range stats {
		scored[i] = analysis.ScoredDriver{
			Stats:   stats[i],
			Score:   round2(scores[i]),
			Metrics: driverMetrics(stats[i], false),
		}
	}

	ranked := analysis.RankByScore(scored)
	out := make([]models.DriverScoreResponse, len(ranked))
	for i, r := range ranked {
		out[i] = models.DriverScoreResponse{
			DriverID: r.Stats.DriverID,
			Score:    r.Score,
			Metrics:  r.Metrics,
		}
	}

	c.JSON(http.StatusOK, models.BatchDriverScoreResponse{Drivers: out})
}

// driverMetrics recomputes the per-driver indicators returned next to
// the model score. The batch endpoint omits experience_months.
func driverMetrics(d model.DriverStats, withExperience bool) map[string]float64 {
	m := map[string]float64{
		"on_time_delivery_rate": round2(d.OnTimeRate() * 100),
		"fuel_efficiency_kmpl":  round2(d.FuelEfficiencyKmpl),
		"safety_score":          round2(d.SafetyScore()),
		"customer_rating":       round2(d.CustomerRating),
	}
	if withExperience {
		m["experience_months"] = float64(d.ExperienceMonths)
	}
	return m
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
