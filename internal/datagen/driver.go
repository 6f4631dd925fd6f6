package datagen

import (
	"fmt"
	"math"

	"milesconnect-ml/internal/config"
	"milesconnect-ml/internal/model"
)

// DriverRecord is one synthetic driver training row: the stats plus the
// score label the model is trained against.
type DriverRecord struct {
	model.DriverStats
	DriverScore float64
}

// Incident counts are rare: mostly zero, occasionally one or two.
var (
	incidentValues  = []int{0, 0, 0, 1, 1, 2}
	incidentWeights = []float64{0.5, 0.3, 0.1, 0.05, 0.03, 0.02}
)

// DriverGenerator fabricates plausible driver performance records.
// Experience drives everything: experienced drivers deliver on time
// more often, waste less fuel and brake harshly less.
type DriverGenerator struct {
	cfg config.DriverGenConfig
	rng *rng
}

func NewDriverGenerator(cfg config.DriverGenConfig, seed int64) *DriverGenerator {
	return &DriverGenerator{cfg: cfg, rng: newRNG(seed)}
}

// Generate produces n driver records.
func (g *DriverGenerator) Generate(n int) []DriverRecord {
	out := make([]DriverRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.one(i))
	}
	return out
}

func (g *DriverGenerator) one(i int) DriverRecord {
	expMonths := g.rng.intn(6, 120)
	expFactor := math.Min(float64(expMonths)/60, 1.0) // caps at 5 years

	totalTrips := g.rng.intn(50, 500)

	baseOnTime := 0.7 + expFactor*0.2
	onTimeRate := clip(g.rng.normal(baseOnTime, 0.1), g.cfg.MinOnTimeRate, g.cfg.MaxOnTimeRate)
	onTime := int(float64(totalTrips) * onTimeRate)
	late := totalTrips - onTime

	avgSpeed := g.rng.uniform(40, 80)

	braking := g.rng.poisson(math.Max(20-expFactor*15, 5))
	accel := g.rng.poisson(math.Max(25-expFactor*18, 7))

	idleMins := g.rng.uniform(10, 60) * float64(totalTrips)

	fuelEff := clip(g.rng.normal(10+expFactor*4, 2), 8, 18)

	distance := float64(totalTrips) * g.rng.uniform(30, 150)

	incidents := incidentValues[g.rng.choice(incidentWeights)]

	rating := clip(3.0+onTimeRate*2+g.rng.normal(0, 0.3), 3.0, 5.0)

	stats := model.DriverStats{
		DriverID:               fmt.Sprintf("DR-%04d", i+1),
		TotalTrips:             totalTrips,
		OnTimeDeliveries:       onTime,
		LateDeliveries:         late,
		AvgSpeedKmh:            round2(avgSpeed),
		HarshBrakingCount:      braking,
		HarshAccelerationCount: accel,
		IdleTimeMins:           round2(idleMins),
		FuelEfficiencyKmpl:     round2(fuelEff),
		DistanceKm:             round2(distance),
		ExperienceMonths:       expMonths,
		IncidentCount:          incidents,
		CustomerRating:         round2(rating),
	}

	return DriverRecord{
		DriverStats: stats,
		DriverScore: round2(DriverScoreLabel(stats, onTimeRate, expFactor)),
	}
}

// DriverScoreLabel is the 0..100 score formula the model learns.
// Weights: on-time 35%, fuel 20%, safety 25%, rating 10%, experience 10%.
func DriverScoreLabel(d model.DriverStats, onTimeRate, expFactor float64) float64 {
	events := float64(d.HarshBrakingCount + d.HarshAccelerationCount)
	safety := clip(100*(1-events/float64(d.TotalTrips*2)), 0, 100)
	return onTimeRate*35 +
		(d.FuelEfficiencyKmpl/18)*20 +
		(safety/100)*25 +
		(d.CustomerRating/5)*10 +
		expFactor*10
}
