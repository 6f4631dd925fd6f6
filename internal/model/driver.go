package model

import "math"

// DriverStats is one driver's aggregated telematics record.
// Units:
// - speeds: km/h
// - fuel efficiency: km/l
// - idle time: minutes (total across trips)
// - customer rating: 0..5
type DriverStats struct {
	DriverID               string
	TotalTrips             int
	OnTimeDeliveries       int
	LateDeliveries         int
	AvgSpeedKmh            float64
	HarshBrakingCount      int
	HarshAccelerationCount int
	IdleTimeMins           float64
	FuelEfficiencyKmpl     float64
	DistanceKm             float64
	ExperienceMonths       int
	IncidentCount          int
	CustomerRating         float64
}

// OnTimeRate is the fraction of on-time deliveries. The +1 in the
// denominator keeps empty records finite and matches the score formula
// used everywhere else in the system.
func (d DriverStats) OnTimeRate() float64 {
	return float64(d.OnTimeDeliveries) / float64(d.TotalTrips+1)
}

// SafetyScore maps harsh driving events to a 0..100 score.
// 100 - (events per trip) * 50, floored at 0.
func (d DriverStats) SafetyScore() float64 {
	events := float64(d.HarshBrakingCount + d.HarshAccelerationCount)
	return math.Max(0, 100-(events/float64(d.TotalTrips+1))*50)
}

// Features returns the flat feature map fed to the scoring model.
// Keys match the column names of the training data.
func (d DriverStats) Features() map[string]float64 {
	return map[string]float64{
		"total_trips":              float64(d.TotalTrips),
		"on_time_deliveries":       float64(d.OnTimeDeliveries),
		"late_deliveries":          float64(d.LateDeliveries),
		"avg_speed_kmh":            d.AvgSpeedKmh,
		"harsh_braking_count":      float64(d.HarshBrakingCount),
		"harsh_acceleration_count": float64(d.HarshAccelerationCount),
		"idle_time_mins":           d.IdleTimeMins,
		"fuel_efficiency_kmpl":     d.FuelEfficiencyKmpl,
		"distance_km":              d.DistanceKm,
		"experience_months":        float64(d.ExperienceMonths),
		"incident_count":           float64(d.IncidentCount),
		"customer_rating":          d.CustomerRating,
	}
}
