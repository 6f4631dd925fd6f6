package models

// HealthResponse reports service status and per-model availability.
type HealthResponse struct {
	Status  string          `json:"status"`
	Service string          `json:"service"`
	Models  map[string]bool `json:"models"`
}

// DriverScoreResponse is the response for single and batch driver
// scoring. Metrics are the locally recomputed per-driver indicators.
type DriverScoreResponse struct {
	DriverID string             `json:"driver_id,omitempty"`
	Score    float64            `json:"score"`
	Metrics  map[string]float64 `json:"metrics"`
}

// BatchDriverScoreResponse holds batch results sorted by score
// descending.
type BatchDriverScoreResponse struct {
	Drivers []DriverScoreResponse `json:"drivers"`
}

// MaintenancePredictionResponse is the maintenance classifier output.
type MaintenancePredictionResponse struct {
	VehicleID            string             `json:"vehicle_id,omitempty"`
	PredictedClass       string             `json:"predicted_class"`
	Confidence           float64            `json:"confidence"`
	DaysUntilMaintenance int                `json:"days_until_maintenance"`
	ClassProbabilities   map[string]float64 `json:"class_probabilities"`
}

// ForecastDay is one day of a demand forecast.
type ForecastDay struct {
	Date               string `json:"date"`
	PredictedShipments int    `json:"predicted_shipments"`
}

// DemandForecastResponse is the demand model output: the next-day
// prediction plus a 7-day rollout.
type DemandForecastResponse struct {
	PredictedShipments int           `json:"predicted_shipments"`
	Forecast7d         []ForecastDay `json:"forecast_7d,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
