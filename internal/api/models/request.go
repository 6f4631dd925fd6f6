package models

import "milesconnect-ml/internal/model"

// DriverData is the request body for driver scoring. Fields map one to
// one onto the scoring model's input vector.
type DriverData struct {
	DriverID               string  `json:"driver_id,omitempty"`
	TotalTrips             int     `json:"total_trips" binding:"min=0"`
	OnTimeDeliveries       int     `json:"on_time_deliveries" binding:"min=0"`
	LateDeliveries         int     `json:"late_deliveries" binding:"min=0"`
	AvgSpeedKmh            float64 `json:"avg_speed_kmh" binding:"min=0"`
	HarshBrakingCount      int     `json:"harsh_braking_count" binding:"min=0"`
	HarshAccelerationCount int     `json:"harsh_acceleration_count" binding:"min=0"`
	IdleTimeMins           float64 `json:"idle_time_mins" binding:"min=0"`
	FuelEfficiencyKmpl     float64 `json:"fuel_efficiency_kmpl" binding:"min=0"`
	DistanceKm             float64 `json:"distance_km" binding:"min=0"`
	ExperienceMonths       int     `json:"experience_months" binding:"min=0"`
	IncidentCount          int     `json:"incident_count" binding:"min=0"`
	CustomerRating         float64 `json:"customer_rating" binding:"min=0,max=5"`
}

func (d DriverData) ToStats() model.DriverStats {
	return model.DriverStats{
		DriverID:               d.DriverID,
		TotalTrips:             d.TotalTrips,
		OnTimeDeliveries:       d.OnTimeDeliveries,
		LateDeliveries:         d.LateDeliveries,
		AvgSpeedKmh:            d.AvgSpeedKmh,
		HarshBrakingCount:      d.HarshBrakingCount,
		HarshAccelerationCount: d.HarshAccelerationCount,
		IdleTimeMins:           d.IdleTimeMins,
		FuelEfficiencyKmpl:     d.FuelEfficiencyKmpl,
		DistanceKm:             d.DistanceKm,
		ExperienceMonths:       d.ExperienceMonths,
		IncidentCount:          d.IncidentCount,
		CustomerRating:         d.CustomerRating,
	}
}

// VehicleData is the request body for maintenance prediction.
type VehicleData struct {
	VehicleID               string  `json:"vehicle_id,omitempty"`
	AgeMonths               int     `json:"age_months" binding:"min=0"`
	OdometerKm              int     `json:"odometer_km" binding:"min=0"`
	DaysSinceLastMaint      int     `json:"days_since_last_maintenance" binding:"min=0"`
	TotalTrips              int     `json:"total_trips" binding:"min=0"`
	AvgTripDistanceKm       float64 `json:"avg_trip_distance_km" binding:"min=0"`
	HarshUsageScore         float64 `json:"harsh_usage_score" binding:"min=0,max=100"`
	FuelConsumptionVariance float64 `json:"fuel_consumption_variance" binding:"min=0"`
	ReportedIssuesCount     int     `json:"reported_issues_count" binding:"min=0"`
}

func (v VehicleData) ToStats() model.VehicleStats {
	return model.VehicleStats{
		VehicleID:               v.VehicleID,
		AgeMonths:               v.AgeMonths,
		OdometerKm:              v.OdometerKm,
		DaysSinceLastMaint:      v.DaysSinceLastMaint,
		TotalTrips:              v.TotalTrips,
		AvgTripDistanceKm:       v.AvgTripDistanceKm,
		HarshUsageScore:         v.HarshUsageScore,
		FuelConsumptionVariance: v.FuelConsumptionVariance,
		ReportedIssuesCount:     v.ReportedIssuesCount,
	}
}

// DemandForecastData is the request body for demand forecasting.
type DemandForecastData struct {
	DayOfWeek           int     `json:"day_of_week" binding:"min=0,max=6"`
	Month               int     `json:"month" binding:"required,min=1,max=12"`
	IsHoliday           bool    `json:"is_holiday"`
	HistShipments7d     int     `json:"historical_shipments_7d" binding:"min=0"`
	HistShipments30d    int     `json:"historical_shipments_30d" binding:"min=0"`
	AvgShipmentWeightKg float64 `json:"avg_shipment_weight_kg" binding:"min=0"`
	ActiveVehicles      int     `json:"active_vehicles_count" binding:"min=0"`
	SeasonalIndex       float64 `json:"seasonal_index" binding:"min=0"`
}

func (d DemandForecastData) ToSnapshot() model.DemandSnapshot {
	return model.DemandSnapshot{
		DayOfWeek:           d.DayOfWeek,
		Month:               d.Month,
		IsHoliday:           d.IsHoliday,
		HistShipments7d:     d.HistShipments7d,
		HistShipments30d:    d.HistShipments30d,
		AvgShipmentWeightKg: d.AvgShipmentWeightKg,
		ActiveVehicles:      d.ActiveVehicles,
		SeasonalIndex:       d.SeasonalIndex,
	}
}
