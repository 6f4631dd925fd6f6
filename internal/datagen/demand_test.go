package datagen_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milesconnect-ml/internal/config"
	"milesconnect-ml/internal/datagen"
)

func demandCfg() config.DemandGenConfig {
	return config.Default().Demand
}

func TestDemandGenerator_SeriesShape(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := datagen.NewDemandGenerator(demandCfg(), 42).Generate(start, 120)
	require.Len(t, records, 120)

	for i, r := range records {
		date := start.AddDate(0, 0, i)
		assert.Equal(t, date.Format("2006-01-02"), r.Date)
		assert.Equal(t, (int(date.Weekday())+6)%7, r.DayOfWeek)
		assert.Equal(t, int(date.Month()), r.Month)

		assert.GreaterOrEqual(t, r.Shipments, 0)
		assert.GreaterOrEqual(t, r.ActiveVehicles, 5)
		assert.LessOrEqual(t, r.ActiveVehicles, 15)
		assert.GreaterOrEqual(t, r.AvgShipmentWeightKg, 200.0)
		assert.LessOrEqual(t, r.AvgShipmentWeightKg, 800.0)
	}
}

func TestDemandGenerator_RollingAverages(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := datagen.NewDemandGenerator(demandCfg(), 42).Generate(start, 60)

	// Before enough history the rolling features echo the day's value.
	for i := 0; i < 7; i++ {
		assert.Equal(t, records[i].Shipments, records[i].HistShipments7d)
	}

	// Afterwards they are the mean of the prior window.
	for i := 7; i < len(records); i++ {
		sum := 0
		for _, prev := range records[i-7 : i] {
			sum += prev.Shipments
		}
		assert.Equal(t, sum/7, records[i].HistShipments7d, "day %d", i)
	}
	for i := 30; i < len(records); i++ {
		sum := 0
		for _, prev := range records[i-30 : i] {
			sum += prev.Shipments
		}
		assert.Equal(t, sum/30, records[i].HistShipments30d, "day %d", i)
	}
}

func TestDemandGenerator_HolidayDampensDemand(t *testing.T) {
	cfg := demandCfg()
	cfg.Holidays = []string{"2024-01-03"}

	records := datagen.NewDemandGenerator(cfg, 42).Generate(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 5)

	require.True(t, records[2].IsHoliday)
	assert.False(t, records[1].IsHoliday)

	// Wednesday the 3rd at half demand should sit well below its
	// weekday neighbors.
	assert.Less(t, records[2].Shipments, records[1].Shipments)
	assert.Less(t, records[2].Shipments, records[3].Shipments)
}

func TestDemandGenerator_SeasonalIndex(t *testing.T) {
	records := datagen.NewDemandGenerator(demandCfg(), 42).Generate(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 366)

	for _, r := range records {
		switch {
		case r.Month >= 10:
			assert.Equal(t, 1.3, r.SeasonalIndex)
		case r.Month >= 6 && r.Month <= 8:
			assert.Equal(t, 0.9, r.SeasonalIndex)
		default:
			assert.Equal(t, 1.0, r.SeasonalIndex)
		}
	}
}

func TestDemandGenerator_Deterministic(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := datagen.NewDemandGenerator(demandCfg(), 9).Generate(start, 30)
	b := datagen.NewDemandGenerator(demandCfg(), 9).Generate(start, 30)
	assert.Equal(t, a, b)
}
