package analysis

import (
	"sort"

	"milesconnect-ml/internal/model"
)

// ScoredDriver pairs a driver's stats with a model-produced score and
// the locally recomputed metrics the API reports alongside it.
type ScoredDriver struct {
	Stats   model.DriverStats
	Score   float64
	Metrics map[string]float64
}

// RankByScore sorts scored drivers descending by score. The sort is
// stable so equal scores keep their input order.
func RankByScore(drivers []ScoredDriver) []ScoredDriver {
	out := make([]ScoredDriver, len(drivers))
	copy(out, drivers)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
