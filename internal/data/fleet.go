package data

import (
	"encoding/json"
	"os"

	"milesconnect-ml/internal/model"
)

// FleetSnapshot matches the JSON shape of a fleet telematics export:
// one aggregated row per driver.
type FleetSnapshot struct {
	Drivers []DriverRow `json:"drivers"`
}

// DriverRow mirrors the driver-score request schema so the same export
// can be replayed against the CLI or the API.
type DriverRow struct {
	DriverID               string  `json:"driver_id"`
	TotalTrips             int     `json:"total_trips"`
	OnTimeDeliveries       int     `json:"on_time_deliveries"`
	LateDeliveries         int     `json:"late_deliveries"`
	AvgSpeedKmh            float64 `json:"avg_speed_kmh"`
	HarshBrakingCount      int     `json:"harsh_braking_count"`
	HarshAccelerationCount int     `json:"harsh_acceleration_count"`
	IdleTimeMins           float64 `json:"idle_time_mins"`
	FuelEfficiencyKmpl     float64 `json:"fuel_efficiency_kmpl"`
	DistanceKm             float64 `json:"distance_km"`
	ExperienceMonths       int     `json:"experience_months"`
	IncidentCount          int     `json:"incident_count"`
	CustomerRating         float64 `json:"customer_rating"`
}

func (r DriverRow) Stats() model.DriverStats {
	return model.DriverStats{
		DriverID:               r.DriverID,
		TotalTrips:             r.TotalTrips,
		OnTimeDeliveries:       r.OnTimeDeliveries,
		LateDeliveries:         r.LateDeliveries,
		AvgSpeedKmh:            r.AvgSpeedKmh,
		HarshBrakingCount:      r.HarshBrakingCount,
		HarshAccelerationCount: r.HarshAccelerationCount,
		IdleTimeMins:           r.IdleTimeMins,
		FuelEfficiencyKmpl:     r.FuelEfficiencyKmpl,
		DistanceKm:             r.DistanceKm,
		ExperienceMonths:       r.ExperienceMonths,
		IncidentCount:          r.IncidentCount,
		CustomerRating:         r.CustomerRating,
	}
}

func LoadFleetSnapshot(path string) (*FleetSnapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap FleetSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
