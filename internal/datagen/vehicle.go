package datagen

import (
	"fmt"

	"milesconnect-ml/internal/config"
	"milesconnect-ml/internal/model"
)

// Maintenance urgency classes, ordered from relaxed to urgent.
const (
	ClassNormal    = "normal"
	ClassSoon      = "soon"
	ClassImmediate = "immediate"
)

// VehicleRecord is one synthetic maintenance training row.
type VehicleRecord struct {
	model.VehicleStats
	MakeModel            string
	MaintenanceClass     string
	DaysUntilMaintenance int
	RiskScore            float64
}

// Light commercial vehicles common in Indian last-mile fleets.
var makesModels = []string{
	"Tata Ace Gold", "Mahindra Jeeto", "Eicher Pro 3015",
	"Ashok Leyland Dost", "Force Motors Traveller",
	"Maruti Suzuki Super Carry", "Piaggio Ape Auto",
}

// VehicleGenerator fabricates vehicle usage records labeled with a
// maintenance urgency class derived from a weighted risk score.
type VehicleGenerator struct {
	cfg config.VehicleGenConfig
	rng *rng
}

func NewVehicleGenerator(cfg config.VehicleGenConfig, seed int64) *VehicleGenerator {
	return &VehicleGenerator{cfg: cfg, rng: newRNG(seed)}
}

// Generate produces n vehicle records.
func (g *VehicleGenerator) Generate(n int) []VehicleRecord {
	out := make([]VehicleRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.one(i))
	}
	return out
}

func (g *VehicleGenerator) one(i int) VehicleRecord {
	ageMonths := g.rng.intn(6, 60)
	makeModel := makesModels[g.rng.intn(0, len(makesModels))]

	baseKm := float64(ageMonths) * g.rng.uniform(500, 2500)
	odometer := int(baseKm + g.rng.normal(0, 5000))
	if odometer < 0 {
		odometer = 0
	}

	daysSinceMaint := g.rng.intn(0, 90)
	totalTrips := g.rng.intn(100, 800)

	avgTripDistance := 50.0
	if totalTrips > 0 {
		avgTripDistance = float64(odometer) / float64(totalTrips)
	}

	harshUsage := g.rng.uniform(20, 80)
	fuelVariance := g.rng.uniform(0, 30)
	issues := g.rng.poisson(float64(ageMonths) / 12) // more issues with age

	stats := model.VehicleStats{
		VehicleID:               fmt.Sprintf("VH-%04d", i+1),
		AgeMonths:               ageMonths,
		OdometerKm:              odometer,
		DaysSinceLastMaint:      daysSinceMaint,
		TotalTrips:              totalTrips,
		AvgTripDistanceKm:       round2(avgTripDistance),
		HarshUsageScore:         round2(harshUsage),
		FuelConsumptionVariance: round2(fuelVariance),
		ReportedIssuesCount:     issues,
	}

	risk := MaintenanceRiskScore(stats)
	class := MaintenanceClassFor(risk)

	var daysUntil int
	switch class {
	case ClassImmediate:
		daysUntil = g.rng.intn(1, 7)
	case ClassSoon:
		daysUntil = g.rng.intn(7, 30)
	default:
		daysUntil = g.rng.intn(30, 90)
	}

	return VehicleRecord{
		VehicleStats:         stats,
		MakeModel:            makeModel,
		MaintenanceClass:     class,
		DaysUntilMaintenance: daysUntil,
		RiskScore:            round2(risk),
	}
}

// MaintenanceRiskScore combines overdue maintenance, mileage, harsh
// usage, age and reported issues into a 0..100 risk score.
func MaintenanceRiskScore(v model.VehicleStats) float64 {
	return (float64(v.DaysSinceLastMaint)/90)*30 +
		(float64(v.OdometerKm)/150000)*25 +
		(v.HarshUsageScore/100)*20 +
		(float64(v.AgeMonths)/60)*15 +
		(float64(v.ReportedIssuesCount)/5)*10
}

// MaintenanceClassFor maps a risk score to its urgency class.
func MaintenanceClassFor(risk float64) string {
	switch {
	case risk > 70:
		return ClassImmediate
	case risk > 40:
		return ClassSoon
	default:
		return ClassNormal
	}
}
