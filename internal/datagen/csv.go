package datagen

import (
	"encoding/csv"
	"os"
	"strconv"
)

// Dataset file names written by the generator.
const (
	DriverCSV  = "driver_performance.csv"
	VehicleCSV = "vehicle_maintenance.csv"
	DemandCSV  = "demand_forecast.csv"
)

func WriteDriverCSV(path string, records []DriverRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"driver_id",
		"total_trips",
		"on_time_deliveries",
		"late_deliveries",
		"avg_speed_kmh",
		"harsh_braking_count",
		"harsh_acceleration_count",
		"idle_time_mins",
		"fuel_efficiency_kmpl",
		"distance_km",
		"experience_months",
		"incident_count",
		"customer_rating",
		"driver_score",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.DriverID,
			strconv.Itoa(r.TotalTrips),
			strconv.Itoa(r.OnTimeDeliveries),
			strconv.Itoa(r.LateDeliveries),
			fmtFloat(r.AvgSpeedKmh),
			strconv.Itoa(r.HarshBrakingCount),
			strconv.Itoa(r.HarshAccelerationCount),
			fmtFloat(r.IdleTimeMins),
			fmtFloat(r.FuelEfficiencyKmpl),
			fmtFloat(r.DistanceKm),
			strconv.Itoa(r.ExperienceMonths),
			strconv.Itoa(r.IncidentCount),
			fmtFloat(r.CustomerRating),
			fmtFloat(r.DriverScore),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func WriteVehicleCSV(path string, records []VehicleRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"vehicle_id",
		"make_model",
		"age_months",
		"odometer_km",
		"days_since_last_maintenance",
		"total_trips",
		"avg_trip_distance_km",
		"harsh_usage_score",
		"fuel_consumption_variance",
		"reported_issues_count",
		"maintenance_class",
		"days_until_maintenance",
		"risk_score",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.VehicleID,
			r.MakeModel,
			strconv.Itoa(r.AgeMonths),
			strconv.Itoa(r.OdometerKm),
			strconv.Itoa(r.DaysSinceLastMaint),
			strconv.Itoa(r.TotalTrips),
			fmtFloat(r.AvgTripDistanceKm),
			fmtFloat(r.HarshUsageScore),
			fmtFloat(r.FuelConsumptionVariance),
			strconv.Itoa(r.ReportedIssuesCount),
			r.MaintenanceClass,
			strconv.Itoa(r.DaysUntilMaintenance),
			fmtFloat(r.RiskScore),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func WriteDemandCSV(path string, records []DemandRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"date",
		"day_of_week",
		"month",
		"is_holiday",
		"historical_shipments_7d",
		"historical_shipments_30d",
		"avg_shipment_weight_kg",
		"active_vehicles_count",
		"seasonal_index",
		"shipments",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Date,
			strconv.Itoa(r.DayOfWeek),
			strconv.Itoa(r.Month),
			strconv.FormatBool(r.IsHoliday),
			strconv.Itoa(r.HistShipments7d),
			strconv.Itoa(r.HistShipments30d),
			fmtFloat(r.AvgShipmentWeightKg),
			strconv.Itoa(r.ActiveVehicles),
			fmtFloat(r.SeasonalIndex),
			strconv.Itoa(r.Shipments),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
