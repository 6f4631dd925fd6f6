package model

// VehicleStats is one vehicle's usage record, the input to maintenance
// prediction.
type VehicleStats struct {
	VehicleID               string
	AgeMonths               int
	OdometerKm              int
	DaysSinceLastMaint      int
	TotalTrips              int
	AvgTripDistanceKm       float64
	HarshUsageScore         float64
	FuelConsumptionVariance float64
	ReportedIssuesCount     int
}

// Features returns the flat feature map fed to the maintenance
// classifier. Keys match the column names of the training data.
func (v VehicleStats) Features() map[string]float64 {
	return map[string]float64{
		"age_months":                  float64(v.AgeMonths),
		"odometer_km":                 float64(v.OdometerKm),
		"days_since_last_maintenance": float64(v.DaysSinceLastMaint),
		"total_trips":                 float64(v.TotalTrips),
		"avg_trip_distance_km":        v.AvgTripDistanceKm,
		"harsh_usage_score":           v.HarshUsageScore,
		"fuel_consumption_variance":   v.FuelConsumptionVariance,
		"reported_issues_count":       float64(v.ReportedIssuesCount),
	}
}
