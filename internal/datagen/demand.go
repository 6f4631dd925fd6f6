package datagen

import (
	"time"

	"milesconnect-ml/internal/config"
	"milesconnect-ml/internal/model"
)

// DemandRecord is one synthetic day of shipment demand.
type DemandRecord struct {
	Date string
	model.DemandSnapshot
	Shipments int
}

// DemandGenerator fabricates a daily shipment series: a slowly growing
// trend shaped by weekday, season and holiday factors, plus noise.
type DemandGenerator struct {
	cfg      config.DemandGenConfig
	rng      *rng
	holidays map[string]bool
}

func NewDemandGenerator(cfg config.DemandGenConfig, seed int64) *DemandGenerator {
	holidays := make(map[string]bool, len(cfg.Holidays))
	for _, h := range cfg.Holidays {
		holidays[h] = true
	}
	return &DemandGenerator{cfg: cfg, rng: newRNG(seed), holidays: holidays}
}

// Generate produces n consecutive daily records starting at start.
func (g *DemandGenerator) Generate(start time.Time, n int) []DemandRecord {
	out := make([]DemandRecord, 0, n)
	shipments := make([]int, 0, n)

	for day := 0; day < n; day++ {
		date := start.AddDate(0, 0, day)
		dateStr := date.Format("2006-01-02")

		// Monday=0 .. Sunday=6.
		dow := (int(date.Weekday()) + 6) % 7
		dowFactor := 0.6
		if dow < 5 {
			dowFactor = 1.2
		}

		seasonal := model.SeasonalIndexForMonth(date.Month())

		isHoliday := g.holidays[dateStr]
		holidayFactor := 1.0
		if isHoliday {
			holidayFactor = 0.5
		}

		trend := g.cfg.BaseDemand + float64(day)*g.cfg.DailyGrowth*g.cfg.BaseDemand
		noise := g.rng.normal(0, 5)

		count := int(trend*dowFactor*seasonal*holidayFactor + noise)
		if count < 0 {
			count = 0
		}

		hist7 := rollingMean(shipments, day, 7, count)
		hist30 := rollingMean(shipments, day, 30, count)

		weight := g.rng.uniform(200, 800)

		vehicles := count / 10
		if vehicles < 5 {
			vehicles = 5
		}
		if vehicles > 15 {
			vehicles = 15
		}

		out = append(out, DemandRecord{
			Date: dateStr,
			DemandSnapshot: model.DemandSnapshot{
				DayOfWeek:           dow,
				Month:               int(date.Month()),
				IsHoliday:           isHoliday,
				HistShipments7d:     hist7,
				HistShipments30d:    hist30,
				AvgShipmentWeightKg: round2(weight),
				ActiveVehicles:      vehicles,
				SeasonalIndex:       seasonal,
			},
			Shipments: count,
		})
		shipments = append(shipments, count)
	}
	return out
}

// rollingMean averages the last window values before day; before enough
// history exists it falls back to today's value.
func rollingMean(prior []int, day, window, today int) int {
	if day < window {
		return today
	}
	sum := 0
	for _, v := range prior[day-window : day] {
		sum += v
	}
	return sum / window
}
