package model

import "time"

// DemandSnapshot captures the demand context for a single day, the
// input to shipment forecasting.
type DemandSnapshot struct {
	DayOfWeek           int // 0=Monday .. 6=Sunday
	Month               int // 1..12
	IsHoliday           bool
	HistShipments7d     int
	HistShipments30d    int
	AvgShipmentWeightKg float64
	ActiveVehicles      int
	SeasonalIndex       float64
}

// Features returns the flat feature map fed to the demand model.
// Keys match the column names of the training data.
func (s DemandSnapshot) Features() map[string]float64 {
	holiday := 0.0
	if s.IsHoliday {
		holiday = 1.0
	}
	return map[string]float64{
		"day_of_week":              float64(s.DayOfWeek),
		"month":                    float64(s.Month),
		"is_holiday":               holiday,
		"historical_shipments_7d":  float64(s.HistShipments7d),
		"historical_shipments_30d": float64(s.HistShipments30d),
		"avg_shipment_weight_kg":   s.AvgShipmentWeightKg,
		"active_vehicles_count":    float64(s.ActiveVehicles),
		"seasonal_index":           s.SeasonalIndex,
	}
}

// SeasonalIndexForMonth returns the demand multiplier for a month:
// festival season (Oct-Dec) runs hot, monsoon (Jun-Aug) runs cold.
func SeasonalIndexForMonth(m time.Month) float64 {
	switch {
	case m >= time.October && m <= time.December:
		return 1.3
	case m >= time.June && m <= time.August:
		return 0.9
	default:
		return 1.0
	}
}
