package datagen

import (
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// rng bundles the parameterized samplers the generators draw from.
// Everything shares one seeded source so a run is reproducible.
type rng struct {
	src rand.Source
	r   *rand.Rand
}

func newRNG(seed int64) *rng {
	src := rand.NewSource(uint64(seed))
	return &rng{src: src, r: rand.New(src)}
}

func (g *rng) normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}.Rand()
}

func (g *rng) poisson(lambda float64) int {
	return int(distuv.Poisson{Lambda: lambda, Src: g.src}.Rand())
}

func (g *rng) uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: g.src}.Rand()
}

// intn samples an integer in [lo, hi).
func (g *rng) intn(lo, hi int) int {
	return lo + g.r.Intn(hi-lo)
}

// choice samples an index from a categorical distribution over weights.
func (g *rng) choice(weights []float64) int {
	return int(distuv.NewCategorical(weights, g.src).Rand())
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
