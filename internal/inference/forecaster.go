package inference

import (
	"time"

	"milesconnect-ml/internal/model"
)

// ForecastDay is one day of a multi-day demand forecast.
type ForecastDay struct {
	Date               string `json:"date"`
	PredictedShipments int    `json:"predicted_shipments"`
}

// Forecaster wraps the demand regressor with a multi-step rollout:
// each day's prediction is fed back into the rolling-history features
// before predicting the next day.
type Forecaster struct {
	reg *Regressor
}

func NewForecaster(reg *Regressor) *Forecaster {
	return &Forecaster{reg: reg}
}

// Predict forecasts shipments for the snapshot's own day.
func (f *Forecaster) Predict(s model.DemandSnapshot) (float64, error) {
	return f.reg.Predict(s.Features())
}

// ForecastNextNDays predicts the n days following from. The snapshot's
// calendar fields are advanced day by day; rolling 7d/30d averages are
// updated with each prediction; the seasonal index follows the month.
// Future holidays are unknown to the caller, so is_holiday is false
// past day one.
func (f *Forecaster) ForecastNextNDays(s model.DemandSnapshot, from time.Time, n int) ([]ForecastDay, error) {
	out := make([]ForecastDay, 0, n)
	cur := s
	date := from

	for i := 0; i < n; i++ {
		pred, err := f.reg.Predict(cur.Features())
		if err != nil {
			return nil, err
		}
		if pred < 0 {
			pred = 0
		}
		out = append(out, ForecastDay{
			Date:               date.Format("2006-01-02"),
			PredictedShipments: int(pred),
		})

		// Blend the prediction into the rolling averages.
		cur.HistShipments7d = int((float64(cur.HistShipments7d)*6 + pred) / 7)
		cur.HistShipments30d = int((float64(cur.HistShipments30d)*29 + pred) / 30)

		date = date.AddDate(0, 0, 1)
		cur.DayOfWeek = (cur.DayOfWeek + 1) % 7
		cur.Month = int(date.Month())
		cur.SeasonalIndex = model.SeasonalIndexForMonth(date.Month())
		cur.IsHoliday = false
	}
	return out, nil
}
